package level

import (
	"bombquest/internal/domain"
	"bombquest/pkg/logger"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// levelFile - формат файла level<N>.yaml
//
//	name: Первый зал
//	ai: wander          # необязательно: idle | wander | chase
//	rows:
//	  - "SSSSS"
//	  - "SP.KS"
type levelFile struct {
	Name string   `yaml:"name"`
	AI   string   `yaml:"ai"`
	Rows []string `yaml:"rows"`
}

// Loader читает уровни из fs.FS (встроенный набор или каталог на диске)
type Loader struct {
	fsys fs.FS
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// FileName - имя файла уровня
func FileName(level int) string {
	return fmt.Sprintf("level%d.yaml", level)
}

// LoadWorld загружает уровень с номером level.
// Нет файла - domain.ErrLevelNotFound, битый файл - domain.ErrLevelParse.
func (l *Loader) LoadWorld(level int) (*domain.World, error) {
	name := FileName(level)
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level %d (%s): %w", level, name, domain.ErrLevelNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	world, err := Parse(level, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "level_loader",
		"level":     level,
		"name":      world.Name,
		"width":     world.Dimension.Width,
		"height":    world.Dimension.Height,
		"spawns":    len(world.Spawns),
	}).Debug("Level loaded")
	return world, nil
}

// Parse строит World из YAML. 'P' - старт игрока, 'M' - точка появления монстра,
// остальные символы - коды декора.
func Parse(level int, data []byte) (*domain.World, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLevelParse, err)
	}
	if len(f.Rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", domain.ErrLevelParse)
	}
	if f.AI != "" {
		if _, ok := strategyByName[strings.ToLower(f.AI)]; !ok {
			return nil, fmt.Errorf("%w: unknown ai %q", domain.ErrLevelParse, f.AI)
		}
	}

	width := len(f.Rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: empty row 0", domain.ErrLevelParse)
	}

	world := domain.NewWorld(level, domain.Dimension{Width: width, Height: len(f.Rows)})
	world.Name = f.Name
	if world.Name == "" {
		world.Name = fmt.Sprintf("Уровень %d", level)
	}
	world.AI = strings.ToLower(f.AI)

	starts := 0
	for y, row := range f.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", domain.ErrLevelParse, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			p := domain.Position{X: x, Y: y}
			switch code := row[x]; code {
			case 'P':
				world.Start = p
				starts++
			case 'M':
				world.Spawns = append(world.Spawns, p)
			default:
				decor, ok := domain.ParseDecor(code)
				if !ok {
					return nil, fmt.Errorf("%w: unknown code %q at %v", domain.ErrLevelParse, code, p)
				}
				world.Set(p, decor)
			}
		}
	}

	if starts != 1 {
		return nil, fmt.Errorf("%w: want exactly one player start, got %d", domain.ErrLevelParse, starts)
	}

	world.SetChanged(false)
	return world, nil
}
