package constants

// Pooja ceremony types offered for booking
const (
	PoojaSatyanarayanKatha = "Satyanarayan Katha"
	PoojaGrihaPravesh      = "Griha Pravesh"
	PoojaGaneshPooja       = "Ganesh Pooja"
	PoojaLaxmiPooja        = "Laxmi Pooja"
	PoojaNavgrahaShanti    = "Navgraha Shanti"
	PoojaVastuShanti       = "Vastu Shanti"
)

// PoojaTypes lists every ceremony offered, in menu order
var PoojaTypes = []string{
	PoojaSatyanarayanKatha,
	PoojaGrihaPravesh,
	PoojaGaneshPooja,
	PoojaLaxmiPooja,
	PoojaNavgrahaShanti,
	PoojaVastuShanti,
}

// IsValidPoojaType reports whether name is one of the offered ceremonies
func IsValidPoojaType(name string) bool {
	for _, t := range PoojaTypes {
		if t == name {
			return true
		}
	}
	return false
}
