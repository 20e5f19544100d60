package summarization

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-idro/types"
)

// ErrEmptySummary is returned when the model answers without content.
var ErrEmptySummary = errors.New("openai returned empty response or choices")

const maxCampsInPrompt = 25

// Summarizer turns an impact analysis report into a short situation brief for coordinators.
type Summarizer struct {
	client *openai.Client
}

func NewSummarizer(apiKey string) *Summarizer {
	return &Summarizer{client: openai.NewClient(apiKey)}
}

func NewSummarizerWithConfig(cfg openai.ClientConfig) *Summarizer {
	return &Summarizer{client: openai.NewClientWithConfig(cfg)}
}

// Summarize writes a brief from the report's figures. The report itself is not changed.
func (s *Summarizer) Summarize(ctx context.Context, report *types.ImpactAnalysisReport) (string, error) {
	prompt := fmt.Sprintf("Write a situation brief for relief coordinators from the following impact analysis of a %s (%s severity). Name the camps at highest risk and the total supplies needed. Use 2-3 sentences and do not invent figures:\n\n---\n%s\n---\n\nBrief:",
		report.DisasterType, report.Severity, digest(report))

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that summarizes disaster relief resource analyses concisely and factually.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   200,
			N:           1,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptySummary
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// digest renders the report as plain lines, highest risk camps first.
func digest(report *types.ImpactAnalysisReport) string {
	camps := make([]types.CampAnalysisResult, len(report.CampAnalysisList))
	copy(camps, report.CampAnalysisList)
	sort.SliceStable(camps, func(i, j int) bool {
		return camps[i].RiskScore > camps[j].RiskScore
	})
	if len(camps) > maxCampsInPrompt {
		camps = camps[:maxCampsInPrompt]
	}

	var b strings.Builder
	t := report.Totals
	fmt.Fprintf(&b, "Camps analyzed: %d\n", len(report.CampAnalysisList))
	fmt.Fprintf(&b, "Totals per day: %d food packets, %d liters of water, %d beds, %d medical kits, %d volunteers, %d ambulances, %d toilets\n",
		t.FoodPackets, t.WaterLiters, t.Beds, t.MedicalKits, t.Volunteers, t.Ambulances, t.Toilets)
	for _, c := range camps {
		fmt.Fprintf(&b, "- %s: population %d, injured %d, risk %s (%d), urgency %s\n",
			campLabel(c), c.Population, c.InjuredCount, c.RiskLevel, c.RiskScore, c.Urgency)
	}
	return b.String()
}

func campLabel(c types.CampAnalysisResult) string {
	if c.CampName != "" {
		return c.CampName
	}
	return c.CampID
}
