package csi

// InstanceID identifies a CSIS instance on the SoC.
type InstanceID uint32

const (
	CSIA InstanceID = iota
	CSIB
	CSIC
	CSID
	CSIE
	CSIF
)

// instanceGroup is the analog layout an instance belongs to.
type instanceGroup int

const (
	groupOther instanceGroup = iota
	groupAC
	groupBD
)

func groupOf(id InstanceID) instanceGroup {
	switch id {
	case CSIA, CSIC:
		return groupAC
	case CSIB, CSID:
		return groupBD
	default:
		return groupOther
	}
}

type phySetting struct {
	group PHYGroup
	index uint32
	value uint32
}

type tuningKey struct {
	soc   SoC
	group instanceGroup
}

var exynos8895Common = []phySetting{
	{PHYGroupB, 0, 0x1F4},
	{PHYGroupB, 1, 0x800},
	{PHYGroupB, 2, 0x10001249},
	{PHYGroupB, 3, 0x500002},
	{PHYGroupS, 0, 0x9E003E00},
	{PHYGroupS, 1, 0x46},
	{PHYGroupS, 2, 0xC000002C},
}

// defaultPHYTuning holds the analog defaults per SoC and instance group.
// SoCs missing from the table get no tuning.
var defaultPHYTuning = map[tuningKey][]phySetting{
	{SoCExynos8895, groupAC}: join(exynos8895Common, []phySetting{
		{PHYGroupS, 4, 0x3FEA},
		{PHYGroupS, 5, 0xC0000},
		{PHYGroupS, 6, 0x140},
	}),
	{SoCExynos8895, groupBD}: join(exynos8895Common, []phySetting{
		{PHYGroupS, 3, 0xC000},
	}),
	{SoCExynos8895, groupOther}: join(exynos8895Common, nil),
}

func join(a, b []phySetting) []phySetting {
	out := make([]phySetting, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
