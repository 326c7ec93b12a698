package boottest

// Check is a single named pass/fail rule applied to a boot transcript.
//
// A check passes when any of its patterns occurs in the transcript as a
// case-insensitive substring. ExpectAbsent inverts that: the check passes
// only when no pattern occurs, which is how panic detection is phrased.
type Check struct {
	Label        string
	Patterns     []string
	ExpectAbsent bool
}

// BootChecks is the fixed check table applied to every transcript.
//
// The order here is display order only; scoring treats all checks equally.
// Patterns are matched as lowercase substrings, so entries must be lowercase.
//
// Two patterns are deliberately broad and must stay that way unless the
// product decides otherwise:
//   - "installer" also matches unrelated log text mentioning the word
//   - "panic" also matches benign messages quoting the word
var BootChecks = []Check{
	{
		Label:    "kernel-loaded",
		Patterns: []string{"loading kernel", "booting kernel", "linux version"},
	},
	{
		Label:    "initramfs-loaded",
		Patterns: []string{"loading initramfs", "initial ramdisk", "initramfs"},
	},
	{
		Label:    "installer-started",
		Patterns: []string{"rustica os installer", "installer"},
	},
	{
		Label:        "no-panic",
		Patterns:     []string{"panic"},
		ExpectAbsent: true,
	},
	{
		Label:    "reached-shell",
		Patterns: []string{"login:", "root@", "~ #", "~$"},
	},
}
