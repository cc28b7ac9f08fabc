package content

import "github.com/lixenwraith/skill-orbit/orbit"

// Category identifies a project filter bucket
type Category string

const (
	CategoryAll Category = "all"
	CategoryWeb Category = "web"
	CategoryIoT Category = "iot"
)

// Filter is one entry of the project filter bar
type Filter struct {
	ID    Category
	Label string
}

// Filters lists project filters in display order
var Filters = []Filter{
	{ID: CategoryAll, Label: "All Projects"},
	{ID: CategoryWeb, Label: "Web / Apps"},
	{ID: CategoryIoT, Label: "IoT Projects"},
}

// Hub is the caption drawn at the orbit center
type Hub struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Project is one portfolio entry
type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Category    Category `yaml:"category"`
	LiveURL     string   `yaml:"live"`
	SourceURL   string   `yaml:"source"`
}

// Catalog is the full portfolio content
type Catalog struct {
	Hub      Hub          `yaml:"hub"`
	Skills   []orbit.Item `yaml:"skills"`
	Featured []Project    `yaml:"featured"`
	Projects []Project    `yaml:"projects"`
}
