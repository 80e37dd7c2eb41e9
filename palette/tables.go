package palette

// NamedColor binds a palette slot to the semantic role it fills in the
// converted document.
type NamedColor struct {
	Slot int
	Name string
}

// NamedColors lists the named colors in emission order. Several roles share
// a slot on purpose.
var NamedColors = []NamedColor{
	{0, "backgroundColor"},
	{1, "inputLineColor"},
	{2, "inputPositionColor"},
	{5, "crosshairColor"},
	{7, "rootNodeColor"},
	{3, "defaultOutlineColor"},
	{4, "defaultLabelColor"},
	{1, "selectionHighlightColor"},
	{2, "selectionInactiveColor"},
	{2, "circleOutlineColor"},
	{242, "circleStoppedColor"},
	{241, "circleWaitingColor"},
	{240, "circleStartedColor"},
	{119, "firstStartBoxColor"},
	{120, "secondStartBoxColor"},
	{240, "twoPushDynamicActiveMarkerColor"},
	{61, "twoPushDynamicInactiveMarkerColor"},
	{2, "oneButtonDynamicOuterGuidesColor"},
	{62, "twoPushDynamicOuterGuidesColor"},
	{0, "infoTextColor"},
	{5, "infoTextBackgroundColor"},
	{111, "warningTextColor"},
	{5, "warningTextBackgroundColor"},
	{135, "gameGuideColor"},
	{9, "conversionNodeColor"},
}

// GroupSpec describes one known node color group: the palette slots making
// up its sequence, whether the alternate bank applies, and the slot of its
// accent color (negative = none).
type GroupSpec struct {
	Name    string
	Members []int
	Alt     bool
	Accent  int
}

// altOffset separates the alternate color bank from the primary one.
const altOffset = 130

// outlineSlot colors every accented group's outline.
const outlineSlot = 3

// KnownGroups lists the color groups in emission order. The duplicate slots
// in the punctuation sequences are positionally meaningful and must stay.
var KnownGroups = []GroupSpec{
	{"lowercase", slotRange(10, 39), true, -1},
	{"lowercaseBackground", slotRange(10, 39), true, 99},
	{"uppercase", slotRange(10, 38), true, 111},
	{"punctuation", []int{105, 103, 104, 100, 104}, true, 112},
	{"limitedPunctuation", []int{99, 109, 105, 103, 104, 100, 104}, true, 112},
	{"punctuationLong", []int{90, 91, 92, 93, 94, 95, 96, 97, 98, 99, 95, 96, 97, 98, 105, 106, 107, 108, 109, 105, 106, 107, 108, 109, 106, 107, 108, 109, 105, 9, 100, 101, 102, 103, 104, 100, 104}, true, 112},
	{"numbers", slotRange(90, 94), true, 113},
	{"accents", []int{72, 82}, true, 112},
	{"space", []int{9}, false, -1},
	{"paragraph", []int{9}, false, -1},
	{"paragraphSpace", []int{9, 9}, false, -1},
}

// slotRange returns the slots from first to last inclusive.
func slotRange(first, last int) []int {
	slots := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		slots = append(slots, i)
	}
	return slots
}
