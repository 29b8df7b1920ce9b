package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CleanSalary_Range(t *testing.T) {
	salary := CleanSalary(AmountOf(80000), AmountOf(120000), "US")

	require.NotNil(t, salary.Display)
	assert.Equal(t, "$80,000 - $120,000", *salary.Display)
	assert.Equal(t, int64(80000), *salary.Min)
	assert.Equal(t, int64(120000), *salary.Max)
	assert.Equal(t, "USD", salary.Currency)
}

func Test_CleanSalary_Absent(t *testing.T) {
	salary := CleanSalary(Amount{}, Amount{}, "IN")
	assert.Equal(t, Salary{Currency: "INR"}, salary)
}

func Test_CleanSalary_SingleBound(t *testing.T) {
	salary := CleanSalary(AmountOf(1500000.75), Amount{}, "IN")
	require.NotNil(t, salary.Display)
	assert.Equal(t, "₹1,500,000+", *salary.Display)
	assert.Nil(t, salary.Max)

	salary = CleanSalary(Amount{}, AmountOf(65000), "DE")
	require.NotNil(t, salary.Display)
	assert.Equal(t, "Up to €65,000", *salary.Display)
	assert.Equal(t, "EUR", salary.Currency)
}

func Test_CleanSalary_NonPositiveAndNaNBoundsAreDropped(t *testing.T) {
	salary := CleanSalary(AmountOf(0), AmountOf(math.NaN()), "GB")
	assert.Equal(t, Salary{Currency: "GBP"}, salary)

	salary = CleanSalary(AmountOf(-10), AmountOf(50000), "GB")
	require.NotNil(t, salary.Display)
	assert.Equal(t, "Up to £50,000", *salary.Display)
}

func Test_CleanSalary_ConversionFailure(t *testing.T) {
	salary := CleanSalary(Amount{Present: true, Invalid: true}, AmountOf(50000), "US")
	assert.Equal(t, Salary{Currency: "USD"}, salary)

	salary = CleanSalary(AmountOf(math.Inf(1)), Amount{}, "CH")
	assert.Equal(t, Salary{Currency: "CHF"}, salary)
}

func Test_CleanSalary_UnknownCurrencySymbol(t *testing.T) {
	salary := CleanSalary(AmountOf(90000), Amount{}, "CH")
	require.NotNil(t, salary.Display)
	assert.Equal(t, "CHF 90,000+", *salary.Display)
}

func Test_Amount_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Number  Amount `json:"number"`
		String  Amount `json:"string"`
		Null    Amount `json:"null"`
		Garbage Amount `json:"garbage"`
		Missing Amount `json:"missing"`
	}
	err := json.Unmarshal([]byte(`{"number": 100.5, "string": "95,000", "null": null, "garbage": "competitive"}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, AmountOf(100.5), payload.Number)
	assert.Equal(t, AmountOf(95000), payload.String)
	assert.Equal(t, Amount{}, payload.Null)
	assert.Equal(t, Amount{Present: true, Invalid: true}, payload.Garbage)
	assert.Equal(t, Amount{}, payload.Missing)
}
