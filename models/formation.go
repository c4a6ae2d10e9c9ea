package models

// FormationSlot is one pitch slot of a formation, with its expected
// position and layout coordinates in percent of the pitch.
type FormationSlot struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
}

// Formation is a named 11-slot pitch layout.
type Formation struct {
	Name  string          `json:"name"`
	Slots []FormationSlot `json:"slots"`
}

// Formations holds the supported formations in display order.
var Formations = []Formation{
	{
		Name: "4-2-3-1",
		Slots: []FormationSlot{
			{ID: "gk", Position: PositionGK, X: 50, Y: 88},
			{ID: "lb", Position: PositionLB, X: 10, Y: 72},
			{ID: "lcb", Position: PositionCB, X: 36.6, Y: 72},
			{ID: "rcb", Position: PositionCB, X: 63.3, Y: 72},
			{ID: "rb", Position: PositionRB, X: 90, Y: 72},
			{ID: "lcdm", Position: PositionCDM, X: 35, Y: 54},
			{ID: "rcdm", Position: PositionCDM, X: 65, Y: 54},
			{ID: "lw", Position: PositionLW, X: 10, Y: 32},
			{ID: "cam", Position: PositionCAM, X: 50, Y: 35},
			{ID: "rw", Position: PositionRW, X: 90, Y: 32},
			{ID: "st", Position: PositionST, X: 50, Y: 15},
		},
	},
	{
		Name: "4-3-3",
		Slots: []FormationSlot{
			{ID: "gk", Position: PositionGK, X: 50, Y: 88},
			{ID: "lb", Position: PositionLB, X: 10, Y: 72},
			{ID: "lcb", Position: PositionCB, X: 36.6, Y: 72},
			{ID: "rcb", Position: PositionCB, X: 63.3, Y: 72},
			{ID: "rb", Position: PositionRB, X: 90, Y: 72},
			{ID: "lcm", Position: PositionCM, X: 30, Y: 52},
			{ID: "cm", Position: PositionCM, X: 50, Y: 56},
			{ID: "rcm", Position: PositionCM, X: 70, Y: 52},
			{ID: "lw", Position: PositionLW, X: 10, Y: 28},
			{ID: "st", Position: PositionST, X: 50, Y: 15},
			{ID: "rw", Position: PositionRW, X: 90, Y: 28},
		},
	},
	{
		Name: "4-4-2",
		Slots: []FormationSlot{
			{ID: "gk", Position: PositionGK, X: 50, Y: 88},
			{ID: "lb", Position: PositionLB, X: 10, Y: 72},
			{ID: "lcb", Position: PositionCB, X: 36.6, Y: 72},
			{ID: "rcb", Position: PositionCB, X: 63.3, Y: 72},
			{ID: "rb", Position: PositionRB, X: 90, Y: 72},
			{ID: "lm", Position: PositionLM, X: 10, Y: 45},
			{ID: "lcm", Position: PositionCM, X: 38, Y: 54},
			{ID: "rcm", Position: PositionCM, X: 62, Y: 54},
			{ID: "rm", Position: PositionRM, X: 90, Y: 45},
			{ID: "lst", Position: PositionST, X: 35, Y: 15},
			{ID: "rst", Position: PositionST, X: 65, Y: 15},
		},
	},
	{
		Name: "3-5-2",
		Slots: []FormationSlot{
			{ID: "gk", Position: PositionGK, X: 50, Y: 88},
			{ID: "lcb", Position: PositionCB, X: 20, Y: 72},
			{ID: "cb", Position: PositionCB, X: 50, Y: 76},
			{ID: "rcb", Position: PositionCB, X: 80, Y: 72},
			{ID: "lm", Position: PositionLM, X: 10, Y: 45},
			{ID: "lcdm", Position: PositionCDM, X: 40, Y: 56},
			{ID: "rcdm", Position: PositionCDM, X: 60, Y: 56},
			{ID: "rm", Position: PositionRM, X: 90, Y: 45},
			{ID: "cam", Position: PositionCAM, X: 50, Y: 32},
			{ID: "lst", Position: PositionST, X: 35, Y: 15},
			{ID: "rst", Position: PositionST, X: 65, Y: 15},
		},
	},
	{
		Name: "3-4-3",
		Slots: []FormationSlot{
			{ID: "gk", Position: PositionGK, X: 50, Y: 88},
			{ID: "lcb", Position: PositionCB, X: 20, Y: 72},
			{ID: "cb", Position: PositionCB, X: 50, Y: 76},
			{ID: "rcb", Position: PositionCB, X: 80, Y: 72},
			{ID: "lm", Position: PositionLM, X: 10, Y: 45},
			{ID: "lcm", Position: PositionCM, X: 40, Y: 54},
			{ID: "rcm", Position: PositionCM, X: 60, Y: 54},
			{ID: "rm", Position: PositionRM, X: 90, Y: 45},
			{ID: "lw", Position: PositionLW, X: 10, Y: 25},
			{ID: "st", Position: PositionST, X: 50, Y: 15},
			{ID: "rw", Position: PositionRW, X: 90, Y: 25},
		},
	},
	{
		Name: "5-3-2",
		Slots: []FormationSlot{
			{ID: "gk", Position: PositionGK, X: 50, Y: 88},
			{ID: "lb", Position: PositionLWB, X: 8, Y: 60},
			{ID: "lcb", Position: PositionCB, X: 30, Y: 72},
			{ID: "cb", Position: PositionCB, X: 50, Y: 76},
			{ID: "rcb", Position: PositionCB, X: 70, Y: 72},
			{ID: "rb", Position: PositionRWB, X: 92, Y: 60},
			{ID: "lcm", Position: PositionCM, X: 35, Y: 48},
			{ID: "cm", Position: PositionCM, X: 50, Y: 54},
			{ID: "rcm", Position: PositionCM, X: 65, Y: 48},
			{ID: "lst", Position: PositionST, X: 35, Y: 15},
			{ID: "rst", Position: PositionST, X: 65, Y: 15},
		},
	},
}

// FormationByName returns the formation with the given name, if any.
func FormationByName(name string) (Formation, bool) {
	for _, f := range Formations {
		if f.Name == name {
			return f, true
		}
	}
	return Formation{}, false
}
