package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "completion_purpose"
	learnerKey contextKey = "completion_learner"
)

// Purposes used by the tutor when calling a provider.
const (
	PurposeExplain  = "explain"
	PurposeFeedback = "feedback"
)

// WithPurpose attaches a purpose label to the context for request logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithLearner attributes completions made under ctx to userID.
func WithLearner(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, learnerKey, userID)
}

// LearnerFrom returns the learner set by WithLearner, or "".
func LearnerFrom(ctx context.Context) string {
	v, _ := ctx.Value(learnerKey).(string)
	return v
}
