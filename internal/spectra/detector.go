package spectra

import "strings"

// Role is what a detected column means on the plot.
type Role int

const (
	// RoleWavenumber is the x axis, in cm⁻¹.
	RoleWavenumber Role = iota
	// RoleIntensity is the y axis, percent transmittance.
	RoleIntensity
)

func (r Role) String() string {
	switch r {
	case RoleWavenumber:
		return "wavenumber"
	case RoleIntensity:
		return "transmittance"
	default:
		return "unknown"
	}
}

// Rule assigns Role to the first column whose label satisfies Match.
type Rule struct {
	Role  Role
	Match func(label string) bool
}

// LabelContains matches labels containing sub, ignoring case.
func LabelContains(sub string) func(string) bool {
	sub = strings.ToLower(sub)
	return func(label string) bool {
		return strings.Contains(strings.ToLower(label), sub)
	}
}

// DefaultRules recognise the usual FTIR export headers: a label containing
// "cm" is the wavenumber and one containing "%t" is the transmittance.
func DefaultRules() []Rule {
	return []Rule{
		{Role: RoleWavenumber, Match: LabelContains("cm")},
		{Role: RoleIntensity, Match: LabelContains("%t")},
	}
}

// Detection holds the columns found for each role.
type Detection struct {
	columns map[Role]string
}

// Column returns the column detected for role.
func (d Detection) Column(role Role) (string, bool) {
	c, ok := d.columns[role]
	return c, ok
}

// Wavenumber returns the detected x column.
func (d Detection) Wavenumber() (string, bool) {
	return d.Column(RoleWavenumber)
}

// Intensity returns the detected y column.
func (d Detection) Intensity() (string, bool) {
	return d.Column(RoleIntensity)
}

// Missing lists the roles no column was found for.
func (d Detection) Missing() []Role {
	var missing []Role
	for _, role := range []Role{RoleWavenumber, RoleIntensity} {
		if _, ok := d.columns[role]; !ok {
			missing = append(missing, role)
		}
	}
	return missing
}

// Plottable reports whether both axes were found.
func (d Detection) Plottable() bool {
	return len(d.Missing()) == 0
}

// Detector applies an ordered rule list to column labels.
type Detector struct {
	rules []Rule
}

// NewDetector creates a detector. With no rules it uses DefaultRules.
func NewDetector(rules ...Rule) *Detector {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Detector{rules: rules}
}

// Detect scans the labels in their original order.
func (d *Detector) Detect(columns []string) Detection {
	found := make(map[Role]string, 2)
	for _, rule := range d.rules {
		if _, done := found[rule.Role]; done {
			continue
		}
		for _, label := range columns {
			if rule.Match(label) {
				found[rule.Role] = label
				break
			}
		}
	}
	return Detection{columns: found}
}
