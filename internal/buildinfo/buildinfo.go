package buildinfo

const Graffiti = "       _                 \n  __ _| |_ _ __ ___  ___ \n / _` | __| '__/ _ \\/ _ \\\n| (_| | |_| | |  __/  __/\n \\__, |\\__|_|  \\___|\\___|\n    |_|                  \n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "QTREE"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo

// String is the one-line version banner printed under Graffiti.
func (b buildinfo) String() string {
	if b.Time() == "" {
		return b.Name() + ": " + b.Tag()
	}
	return b.Name() + ": " + b.Time() + ", " + b.Tag()
}
