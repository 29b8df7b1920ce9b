package classifier

// Input is the lower-cased text a rule is evaluated against.
type Input struct {
	Text   string
	Skills string
}

// Rule yields Result when any of Keywords occurs in the text
// or any of SkillKeywords occurs in the extracted skills.
type Rule[T any] struct {
	Name          string
	Keywords      []string
	SkillKeywords []string
	Result        T
}

func (r Rule[T]) Matches(in Input) bool {
	return containsAny(in.Text, r.Keywords) || containsAny(in.Skills, r.SkillKeywords)
}

// FirstMatch evaluates rules in declaration order and returns the result of the first matching one.
func FirstMatch[T any](rules []Rule[T], in Input) (T, bool) {
	for _, rule := range rules {
		if rule.Matches(in) {
			return rule.Result, true
		}
	}
	var zero T
	return zero, false
}
