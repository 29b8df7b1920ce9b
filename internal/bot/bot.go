package bot

import (
	"context"
	"errors"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/maxaizer/job-ingest/internal/events"
	log "github.com/sirupsen/logrus"
)

type runRepository interface {
	Latest(ctx context.Context) (*entities.ScrapeRun, error)
}

// Bot reports run summaries to one chat and answers /status there.
type Bot struct {
	api    apiInterface
	chatID int64
	runs   runRepository
	// updates is nil for bots built around a non-network api.
	updates botApi.UpdatesChannel
	stop    func()
}

func NewBot(token string, chatID int64, bus EventBus.Bus, runs runRepository) (*Bot, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	err = botApi.SetLogger(log.StandardLogger())
	if err != nil {
		return nil, err
	}

	createdBot, err := newBot(api, chatID, bus, runs)
	if err != nil {
		return nil, err
	}

	updateConfig := botApi.NewUpdate(0)
	updateConfig.Timeout = 60
	createdBot.updates = api.GetUpdatesChan(updateConfig)
	createdBot.stop = api.StopReceivingUpdates

	return createdBot, nil
}

func newBot(api apiInterface, chatID int64, bus EventBus.Bus, runs runRepository) (*Bot, error) {
	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if runs == nil {
		return nil, errors.New("run repository is nil")
	}

	createdBot := &Bot{api: api, chatID: chatID, runs: runs}

	if err := bus.SubscribeAsync(events.ScrapeCompletedTopic, createdBot.onScrapeCompleted, true); err != nil {
		return nil, err
	}
	return createdBot, nil
}

// Run handles commands until Stop is called.
func (b *Bot) Run() {
	if b.updates == nil {
		return
	}

	for update := range b.updates {
		if update.Message == nil || update.Message.Chat.ID != b.chatID || !update.Message.IsCommand() {
			continue
		}
		b.handleCommand(update.Message.Command())
	}
}

func (b *Bot) Stop() {
	if b.stop != nil {
		b.stop()
	}
}

func (b *Bot) handleCommand(command string) {
	switch command {
	case statusCommand:
		run, err := b.runs.Latest(context.Background())
		if err != nil {
			log.Errorf("failed to load latest run: %v", err)
			b.send("Could not load the latest run.")
			return
		}
		b.send(formatLatestRun(run))
	case helpCommand:
		b.send("/status shows the latest scrape run.")
	}
}

func (b *Bot) onScrapeCompleted(event events.ScrapeCompleted) {
	b.send(formatSummary(event))
}

func (b *Bot) send(text string) {
	msg := botApi.NewMessage(b.chatID, text)
	_, _ = sendWithLogError(b.api, msg)
}
