// Package build holds version information injected at link time.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders the info on one line.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	s := "docklayout " + version
	if i.Commit != "" {
		s += " (" + i.Commit + ")"
	}
	if i.BuildDate != "" {
		s += " built " + i.BuildDate
	}
	if i.GoVersion != "" {
		s += " with " + i.GoVersion
	}
	return s
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/docklayout"
}
