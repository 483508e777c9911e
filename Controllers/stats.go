package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"Momentum/AbstractFunctions"
	"Momentum/Models"
	"Momentum/Recurring"
	"Momentum/Store"
)

// StatsController computes productivity statistics over the cached
// collections and exports them as a workbook.
type StatsController struct {
	Store   *Store.Store
	Planner *Recurring.Planner
}

// NewStatsController creates a new StatsController
func NewStatsController(store *Store.Store, planner *Recurring.Planner) *StatsController {
	return &StatsController{Store: store, Planner: planner}
}

// MonthlyGoalStat counts goals by target month.
type MonthlyGoalStat struct {
	Month      string `json:"month"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"inProgress"`
}

// ScheduleScore is the completion rate of one day's schedule.
type ScheduleScore struct {
	Date  string  `json:"date"`
	Total int     `json:"total"`
	Done  int     `json:"done"`
	Score float64 `json:"score"`
}

// Summary returns goal progress by month, milestone completion and
// per-day schedule scores.
func (c *StatsController) Summary(ctx *fiber.Ctx) error {
	goals := c.Store.Goals.Goals()
	schedules := c.Store.Schedules.Schedules()

	monthly := monthlyGoalStats(goals)

	milestonesDone, milestonesTotal := 0, 0
	for _, goal := range goals {
		for _, milestone := range goal.Milestones {
			milestonesTotal++
			if milestone.Completed {
				milestonesDone++
			}
		}
	}
	milestoneRate := 0
	if milestonesTotal > 0 {
		milestoneRate = int(float64(milestonesDone) / float64(milestonesTotal) * 100)
	}

	scores := scheduleScores(schedules)

	recurring := c.Planner.Tasks()
	recurringDone := 0
	for _, task := range recurring {
		if task.Completed {
			recurringDone++
		}
	}

	return ctx.JSON(fiber.Map{
		"monthlyGoals": monthly,
		"milestones": fiber.Map{
			"completed": milestonesDone,
			"total":     milestonesTotal,
			"rate":      milestoneRate,
		},
		"scheduleScores": scores,
		"recurring": fiber.Map{
			"completed": recurringDone,
			"total":     len(recurring),
		},
	})
}

// Export streams the statistics workbook.
func (c *StatsController) Export(ctx *fiber.Ctx) error {
	buf, err := c.buildWorkbook()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	filename := fmt.Sprintf("momentum_report_%s.xlsx", AbstractFunctions.DayString(time.Now()))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.SendStream(buf)
}

func (c *StatsController) buildWorkbook() (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Goals"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Title", "Category", "Priority", "Status", "Progress", "Target Date", "Milestones Done", "Milestones Total"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, goal := range c.Store.Goals.Goals() {
		row := rowIndex + 2
		done, total := 0, len(goal.Milestones)
		for _, milestone := range goal.Milestones {
			if milestone.Completed {
				done++
			}
		}
		values := []interface{}{
			goal.Title,
			goal.Category,
			AbstractFunctions.TranslateLabel(goal.Priority),
			AbstractFunctions.TranslateLabel(goal.Status),
			goal.Progress,
			AbstractFunctions.DayString(goal.TargetDate),
			done,
			total,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}
	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 18)
	}

	scheduleSheet := "Schedules"
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	scheduleHeaders := []string{"Date", "Tasks", "Done", "Score"}
	for i, header := range scheduleHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(scheduleSheet, cell, header)
	}
	if headerStyle != 0 {
		f.SetRowStyle(scheduleSheet, 1, 1, headerStyle)
	}
	for rowIndex, score := range scheduleScores(c.Store.Schedules.Schedules()) {
		row := rowIndex + 2
		values := []interface{}{score.Date, score.Total, score.Done, score.Score}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(scheduleSheet, cell, value)
		}
	}

	if defaultSheet := f.GetSheetName(0); defaultSheet != sheetName && defaultSheet != scheduleSheet {
		f.DeleteSheet(defaultSheet)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %v", err)
	}
	return &buf, nil
}

func monthlyGoalStats(goals []Models.Goal) []MonthlyGoalStat {
	var monthly []MonthlyGoalStat
	for _, goal := range goals {
		month := goal.TargetDate.Local().Format("January 2006")
		completed := 0
		if goal.Status == Models.GoalStatusComplete {
			completed = 1
		}
		inProgress := 0
		if goal.Status == Models.GoalStatusInProgress {
			inProgress = 1
		}

		found := false
		for i := range monthly {
			if monthly[i].Month == month {
				monthly[i].Completed += completed
				monthly[i].InProgress += inProgress
				found = true
				break
			}
		}
		if !found {
			monthly = append(monthly, MonthlyGoalStat{Month: month, Completed: completed, InProgress: inProgress})
		}
	}
	return monthly
}

func scheduleScores(schedules []Models.DailySchedule) []ScheduleScore {
	scores := make([]ScheduleScore, 0, len(schedules))
	for _, schedule := range schedules {
		done := 0
		for _, task := range schedule.Tasks {
			if task.Status == Models.TaskStatusDone {
				done++
			}
		}
		score := 0.0
		if len(schedule.Tasks) > 0 {
			score = float64(done) / float64(len(schedule.Tasks)) * 100
		}
		scores = append(scores, ScheduleScore{
			Date:  AbstractFunctions.NormalizeDay(schedule.Date),
			Total: len(schedule.Tasks),
			Done:  done,
			Score: score,
		})
	}
	return scores
}
