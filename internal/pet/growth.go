package pet

// BodyStage is the body shape dimension of growth.
type BodyStage string

const (
	BodyNormal   BodyStage = "normal"
	BodySturdy   BodyStage = "sturdy"
	BodySlim     BodyStage = "slim"
	BodyBalanced BodyStage = "balanced"
)

// AppearanceStage is the coat dimension of growth. It only ever moves forward.
type AppearanceStage string

const (
	AppearanceBase      AppearanceStage = "base"
	AppearanceFurChange AppearanceStage = "fur_change"
	AppearanceFurGlow   AppearanceStage = "fur_glow"
	AppearanceMarked    AppearanceStage = "marked"
)

// GrowthDimension names which stage an event is about.
type GrowthDimension string

const (
	DimensionBody       GrowthDimension = "body"
	DimensionAppearance GrowthDimension = "appearance"
)

// GrowthEvent reports a stage change produced by CheckGrowth
type GrowthEvent struct {
	Dimension GrowthDimension `json:"type"`
	Stage     string          `json:"stage"`
	Label     string          `json:"label"`
}

// AppearanceThreshold is one rung of the appearance ladder
type AppearanceThreshold struct {
	Stage    AppearanceStage
	Label    string
	TotalReq int
}

// AppearanceThresholds is ordered by ascending requirement.
var AppearanceThresholds = []AppearanceThreshold{
	{Stage: AppearanceBase, Label: "Basic Coat", TotalReq: 0},
	{Stage: AppearanceFurChange, Label: "Fur Change", TotalReq: 20},
	{Stage: AppearanceFurGlow, Label: "Glossy Fur", TotalReq: 40},
	{Stage: AppearanceMarked, Label: "Signature Mark", TotalReq: 60},
}

var bodyLabels = map[BodyStage]string{
	BodyNormal:   "Well-Proportioned",
	BodySturdy:   "Sturdy & Round",
	BodySlim:     "Tall & Agile",
	BodyBalanced: "Strong & Balanced",
}

// BodyLabel returns the display label for a body stage
func BodyLabel(stage BodyStage) string {
	if label, ok := bodyLabels[stage]; ok {
		return label
	}
	return bodyLabels[BodyNormal]
}

// AppearanceLabel returns the display label for an appearance stage
func AppearanceLabel(stage AppearanceStage) string {
	for _, t := range AppearanceThresholds {
		if t.Stage == stage {
			return t.Label
		}
	}
	return AppearanceThresholds[0].Label
}

// DeriveBody computes the body stage from the counters. Balanced wins over
// sturdy, sturdy over slim.
func DeriveBody(feeds, interacts int) BodyStage {
	switch {
	case feeds >= BalancedFeedRequirement && interacts >= BalancedInteractRequirement:
		return BodyBalanced
	case feeds >= SturdyFeedRequirement:
		return BodySturdy
	case interacts >= SlimInteractRequirement:
		return BodySlim
	default:
		return BodyNormal
	}
}

// DeriveAppearance returns the highest appearance stage whose threshold the
// combined action total meets.
func DeriveAppearance(total int) AppearanceStage {
	stage := AppearanceThresholds[0].Stage
	for _, t := range AppearanceThresholds {
		if total >= t.TotalReq {
			stage = t.Stage
		}
	}
	return stage
}

// GrowthProgress describes the next appearance stage still to reach
type GrowthProgress struct {
	NextStage AppearanceStage
	NextLabel string
	Remaining int
	Complete  bool
}

// ProgressFor returns the next unmet appearance threshold for a total.
func ProgressFor(total int) GrowthProgress {
	for _, t := range AppearanceThresholds {
		if total < t.TotalReq {
			return GrowthProgress{
				NextStage: t.Stage,
				NextLabel: t.Label,
				Remaining: t.TotalReq - total,
			}
		}
	}
	return GrowthProgress{Complete: true}
}
