package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-lander/internal/core"
	"gopkg.in/yaml.v3"
)

// yamlLevel represents the YAML structure for a level file.
type yamlLevel struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Size      yamlSize       `yaml:"size"`
	Spawn     yamlPoint      `yaml:"spawn"`
	Colliders []yamlCollider `yaml:"colliders"`
	Obstacles []yamlObstacle `yaml:"obstacles,omitempty"`
}

type yamlSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type yamlPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type yamlCollider struct {
	Tag string `yaml:"tag"`
	X   int    `yaml:"x"`
	Y   int    `yaml:"y"`
	W   int    `yaml:"w"`
	H   int    `yaml:"h"`
}

type yamlObstacle struct {
	X      int       `yaml:"x"`
	Y      int       `yaml:"y"`
	W      int       `yaml:"w"`
	H      int       `yaml:"h"`
	Move   yamlPoint `yaml:"move"`
	Period float64   `yaml:"period"`
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// ParseYAML parses a YAML level file. The result is not validated.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	level := Level{
		ID:     yl.ID,
		Name:   name,
		Width:  yl.Size.W,
		Height: yl.Size.H,
		Spawn:  core.V(float64(yl.Spawn.X)+0.5, float64(yl.Spawn.Y)+0.5),
	}

	for _, c := range yl.Colliders {
		tag := c.Tag
		if tag == "" {
			tag = TagObstacle
		}
		level.Colliders = append(level.Colliders, Collider{
			Tag:  tag,
			Rect: core.NewRect(c.X, c.Y, c.W, c.H),
		})
	}

	for _, o := range yl.Obstacles {
		level.Obstacles = append(level.Obstacles, Obstacle{
			Rect:   core.NewRect(o.X, o.Y, o.W, o.H),
			Move:   core.V(float64(o.Move.X), float64(o.Move.Y)),
			Period: o.Period,
		})
	}

	return level, nil
}
