package domain

import "encoding/json"

// RequestPayload is the body posted to the recommendation endpoint.
type RequestPayload struct {
	VehicleType    VehicleCategory `json:"vehicleType"`
	Budget         string          `json:"budget"`
	VehicleSubtype string          `json:"vehicleSubtype"`
}

type RecommendationResponse struct {
	Recommendations []VehicleCandidate `json:"recommendations"`
	TotalFound      *int64             `json:"total_found,omitempty"`
}

type MatchTier string

const (
	MatchTierHigh   MatchTier = "high"
	MatchTierMedium MatchTier = "medium"
	MatchTierLow    MatchTier = "low"
)

func (t MatchTier) String() string {
	return string(t)
}

type Medal string

const (
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
)

func (m Medal) String() string {
	return string(m)
}

// RankedCandidate is a candidate annotated for display.
type RankedCandidate struct {
	VehicleCandidate
	DisplayRank     int       `json:"displayRank"`
	MatchPercentage int       `json:"matchPercentage"`
	MatchTier       MatchTier `json:"matchTier"`
	Medal           Medal     `json:"medal"`
}

// MarshalJSON flattens the candidate and its annotations into one object.
func (r RankedCandidate) MarshalJSON() ([]byte, error) {
	m := r.VehicleCandidate.fields()
	m["displayRank"] = r.DisplayRank
	m["matchPercentage"] = r.MatchPercentage
	m["matchTier"] = r.MatchTier
	m["medal"] = r.Medal
	return json.Marshal(m)
}
