package CronJobs

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"

	"Momentum/AbstractFunctions"
	"Momentum/Recurring"
	"Momentum/Store"
)

// DailyDigest posts a morning summary of the day's recurring tasks and
// schedule to a Slack channel.
type DailyDigest struct {
	cronScheduler *cron.Cron
	store         *Store.Store
	planner       *Recurring.Planner
	api           *slack.Client
	channelID     string
	spec          string
}

// NewDailyDigest creates a digest job. token and channelID come from the
// environment; callers skip construction when either is empty.
func NewDailyDigest(store *Store.Store, planner *Recurring.Planner, token, channelID, spec string) *DailyDigest {
	return &DailyDigest{
		cronScheduler: cron.New(cron.WithSeconds()),
		store:         store,
		planner:       planner,
		api:           slack.New(token),
		channelID:     channelID,
		spec:          spec,
	}
}

// Start schedules the digest.
func (d *DailyDigest) Start() error {
	_, err := d.cronScheduler.AddFunc(d.spec, func() {
		log.Println("Posting daily digest")
		d.Post()
	})
	if err != nil {
		return fmt.Errorf("error scheduling digest: %w", err)
	}

	d.cronScheduler.Start()
	log.Printf("Daily digest scheduled (%s)", d.spec)
	return nil
}

// Stop terminates the digest job.
func (d *DailyDigest) Stop() {
	if d.cronScheduler != nil {
		d.cronScheduler.Stop()
		log.Println("Daily digest stopped")
	}
}

// Post builds and sends the digest message.
func (d *DailyDigest) Post() {
	message := d.buildMessage()
	_, _, err := d.api.PostMessage(d.channelID,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		log.Printf("Error sending digest: %v", err)
	}
}

func (d *DailyDigest) buildMessage() string {
	today := AbstractFunctions.DayString(time.Now())
	var b strings.Builder
	fmt.Fprintf(&b, "*Momentum digest %s*\n", today)

	tasks := d.planner.Tasks()
	if len(tasks) == 0 {
		b.WriteString("No recurring tasks today.\n")
	} else {
		done := 0
		b.WriteString("Recurring tasks:\n")
		for _, task := range tasks {
			mark := "☐"
			if task.Completed {
				mark = "☑"
				done++
			}
			fmt.Fprintf(&b, "  %s %s\n", mark, task.Title)
		}
		fmt.Fprintf(&b, "%d of %d done.\n", done, len(tasks))
	}

	schedule := AbstractFunctions.GetScheduleForDate(today, d.store.Schedules.Schedules())
	if schedule == nil || len(schedule.Tasks) == 0 {
		b.WriteString("Nothing scheduled today.")
	} else {
		fmt.Fprintf(&b, "Scheduled: %d tasks", len(schedule.Tasks))
	}

	return b.String()
}
