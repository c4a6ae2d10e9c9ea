package models

// Position is an on-pitch position code. Every normalized player resolves
// to exactly one of these; unrecognized source text maps to PositionCM.
type Position string

const (
	PositionGK  Position = "GK"
	PositionLB  Position = "LB"
	PositionRB  Position = "RB"
	PositionCB  Position = "CB"
	PositionLWB Position = "LWB"
	PositionRWB Position = "RWB"
	PositionCDM Position = "CDM"
	PositionCM  Position = "CM"
	PositionCAM Position = "CAM"
	PositionLM  Position = "LM"
	PositionRM  Position = "RM"
	PositionLW  Position = "LW"
	PositionRW  Position = "RW"
	PositionST  Position = "ST"
)

// AllPositions lists every valid position code.
var AllPositions = []Position{
	PositionGK,
	PositionLB, PositionRB, PositionCB, PositionLWB, PositionRWB,
	PositionCDM, PositionCM, PositionCAM, PositionLM, PositionRM,
	PositionLW, PositionRW, PositionST,
}

// IsValid reports whether p is a member of the position enumeration.
func (p Position) IsValid() bool {
	for _, v := range AllPositions {
		if p == v {
			return true
		}
	}
	return false
}

// Player is a normalized, catalog-ready player record.
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Rating   int      `json:"rating"`
	Value    float64  `json:"value"`
	Image    string   `json:"image,omitempty"`
	Club     string   `json:"club,omitempty"`
}
