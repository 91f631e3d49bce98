package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/Xwdgood/Virtual-GP/model"
	"github.com/Xwdgood/Virtual-GP/util"
)

// legacyGreeting is the greeting the summary filter was originally written
// against. The live greeting differs, so the filter never actually removes
// anything; the mismatch is kept as-is rather than silently fixed.
const legacyGreeting = "Hello, how can I assist you today?"

// Summarize turns a consultation's message list into the summary shown after
// the session. The content is a hardcoded template, not an analysis: any
// non-empty conversation yields the same fixed symptom block, and an empty
// one yields an all-empty summary for the caller to render as an empty state.
func Summarize(messages []model.ChatMessage, now time.Time) model.ChatSummary {
	real := make([]model.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if strings.TrimSpace(m.Text) == "" || m.Text == legacyGreeting {
			continue
		}
		real = append(real, m)
	}

	if len(real) == 0 {
		return model.ChatSummary{
			Symptoms:        []string{},
			Recommendations: []string{},
			RecentHistory:   []string{},
		}
	}

	return model.ChatSummary{
		Symptoms: []string{
			"You are chatting with a public AI site. To protect the owner's token, I won't disclose anything; I will assume traumatic brain injury.",
			"Please report your traumatic brain injury level (1–10).",
			"If you are still replying, I consider it level 10 and very serious—hang up and book a doctor now.",
		},
		Recommendations: []string{
			"Hang up and book an appointment with a doctor immediately.",
			"Do not rely on public AI tools for emergencies.",
		},
		RecentHistory: []string{
			fmt.Sprintf("Consultation on %s", now.Format("1/2/2006")),
		},
	}
}

// SummaryReport renders a summary into the "Chat Record" medical report saved
// onto the user's timeline.
func SummaryReport(summary model.ChatSummary, now time.Time) model.MedicalReport {
	return model.MedicalReport{
		ID:          util.NewID(),
		Title:       "Chat Record",
		Date:        now,
		Description: "AI consultation summary",
		TextContent: fmt.Sprintf(
			"Symptoms:\n%s\n\nRecommendations:\n%s\n\nRecent History:\n%s",
			bullets(summary.Symptoms),
			bullets(summary.Recommendations),
			bullets(summary.RecentHistory),
		),
		Type: model.ReportTypeText,
	}
}

func bullets(lines []string) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, "• "+line)
	}
	return strings.Join(out, "\n")
}
