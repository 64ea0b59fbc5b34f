package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studytrack/internal/domain"
	"studytrack/internal/schema"
)

// ProductivityInput carries one week of study metrics.
type ProductivityInput struct {
	TotalStudyHours   float64
	SessionsCompleted int
	AvgSessionMinutes float64
	TasksCompleted    int
	TasksPlanned      int
}

var productivityInputSchema = schema.New(FlowProductivity,
	schema.Float("total_study_hours", true, 0, 168),
	schema.Int("sessions_completed", true, 0, 500),
	schema.Float("avg_session_minutes", true, 0, 600),
	schema.Int("tasks_completed", true, 0, 1000),
	schema.Int("tasks_planned", true, 0, 1000),
)

func (in ProductivityInput) Validate() error {
	errs := productivityInputSchema.Validate(map[string]interface{}{
		"total_study_hours":   in.TotalStudyHours,
		"sessions_completed":  in.SessionsCompleted,
		"avg_session_minutes": in.AvgSessionMinutes,
		"tasks_completed":     in.TasksCompleted,
		"tasks_planned":       in.TasksPlanned,
	})
	if errs != nil {
		return errs
	}
	if in.TasksCompleted > in.TasksPlanned {
		return domain.ValidationErrors{
			domain.NewOutOfRangeError("tasks_completed", in.TasksCompleted, 0, in.TasksPlanned),
		}
	}
	return nil
}

const productivityPromptTemplate = `You are a study-productivity coach.
Analyze this week's metrics and give the student actionable feedback.

Metrics:
- Total study hours: %.1f
- Pomodoro sessions completed: %d
- Average session length: %.0f minutes
- Tasks completed: %d of %d planned

Respond with ONLY a JSON object in this exact format:
{
  "insights": ["observation about the data"],
  "recommendations": ["specific actionable suggestion"],
  "focusScore": 0.0
}

focusScore is a number between 0 and 1 rating overall focus quality.`

type productivityPayload struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	FocusScore      float64  `json:"focusScore"`
}

// AnalyzeProductivity runs the productivity-analysis flow.
func AnalyzeProductivity(ctx context.Context, gen domain.TextGenerator, in ProductivityInput) (*domain.ProductivityInsights, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(productivityPromptTemplate,
		in.TotalStudyHours, in.SessionsCompleted, in.AvgSessionMinutes,
		in.TasksCompleted, in.TasksPlanned)

	doc, err := invoke(ctx, gen, FlowProductivity, prompt)
	if err != nil {
		return nil, err
	}

	var payload productivityPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, domain.NewGenerationEmptyError(FlowProductivity)
	}

	insights := trimNonEmpty(payload.Insights)
	recommendations := trimNonEmpty(payload.Recommendations)
	if len(insights) == 0 && len(recommendations) == 0 {
		return nil, domain.NewEmptyResultError(FlowProductivity)
	}

	return &domain.ProductivityInsights{
		Insights:        insights,
		Recommendations: recommendations,
		FocusScore:      clamp01(payload.FocusScore),
	}, nil
}

func trimNonEmpty(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
