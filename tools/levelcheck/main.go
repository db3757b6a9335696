package main

import (
	"bombquest/internal/domain"
	"bombquest/internal/level"
	"bombquest/internal/version"
	"bombquest/levels"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "check":
		reports, err := checkLevels(levelFS(os.Args[2:]))
		if err != nil {
			fmt.Printf("Check failed: %v\n", err)
			os.Exit(1)
		}
		failed := false
		for _, r := range reports {
			fmt.Println(r)
			failed = failed || r.Err != nil
		}
		if failed {
			os.Exit(1)
		}
	case "show":
		if len(os.Args) < 3 {
			fmt.Println("Usage: levelcheck show <level> [dir]")
			return
		}
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Printf("Invalid level number: %v\n", err)
			return
		}
		w, err := level.NewLoader(levelFS(os.Args[3:])).LoadWorld(n)
		if err != nil {
			fmt.Printf("Load failed: %v\n", err)
			os.Exit(1)
		}
		drawWorld(os.Stdout, w)
	case "buildid":
		if len(os.Args) < 3 {
			fmt.Println("Usage: levelcheck buildid <YYYY-MM-DD>")
			return
		}
		id, err := version.CalculateBuildID(os.Args[2])
		if err != nil {
			fmt.Printf("Invalid date: %v\n", err)
			return
		}
		fmt.Println(id)
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Level Utility - проверка файлов уровней
Commands:
  check [dir]            - разобрать все levelN.yaml (по умолчанию встроенные)
  show <level> [dir]     - нарисовать уровень символами
  buildid <YYYY-MM-DD>   - номер сборки для даты`)
}

func levelFS(args []string) fs.FS {
	if len(args) > 0 && args[0] != "" {
		return os.DirFS(args[0])
	}
	return levels.FS
}

// report - результат разбора одного файла
type report struct {
	File     string
	Level    int
	Name     string
	Width    int
	Height   int
	Monsters int
	Err      error
}

func (r report) String() string {
	if r.Err != nil {
		return fmt.Sprintf("FAIL %s: %v", r.File, r.Err)
	}
	return fmt.Sprintf("ok   %s: %q %dx%d, monsters: %d", r.File, r.Name, r.Width, r.Height, r.Monsters)
}

// checkLevels разбирает все levelN.yaml в корне fsys по порядку номеров
func checkLevels(fsys fs.FS) ([]report, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var reports []report
	for _, e := range entries {
		n, ok := levelNumber(e.Name())
		if e.IsDir() || !ok {
			continue
		}
		r := report{File: e.Name(), Level: n}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			r.Err = err
			reports = append(reports, r)
			continue
		}
		w, err := level.Parse(n, data)
		if err != nil {
			r.Err = err
		} else {
			r.Name = w.Name
			r.Width, r.Height = w.Dimension.Width, w.Dimension.Height
			r.Monsters = len(w.Spawns)
		}
		reports = append(reports, r)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Level < reports[j].Level })
	return reports, nil
}

// levelNumber достает N из имени levelN.yaml
func levelNumber(name string) (int, bool) {
	if path.Ext(name) != ".yaml" || !strings.HasPrefix(name, "level") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "level"), ".yaml"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// drawWorld печатает декор символами glyph, игрока и монстров поверх
func drawWorld(out io.Writer, w *domain.World) {
	fmt.Fprintf(out, "%s (level %d, ai %q)\n", w.Name, w.Level, w.AI)

	spawns := make(map[domain.Position]bool, len(w.Spawns))
	for _, p := range w.Spawns {
		spawns[p] = true
	}

	for y := 0; y < w.Dimension.Height; y++ {
		var b strings.Builder
		for x := 0; x < w.Dimension.Width; x++ {
			p := domain.Position{X: x, Y: y}
			switch {
			case p == w.Start:
				b.WriteByte(domain.PlayerGlyph.Char())
			case spawns[p]:
				b.WriteByte(domain.MonsterGlyph.Char())
			case w.Get(p) == domain.DecorEmpty:
				b.WriteByte('.')
			default:
				b.WriteByte(w.Get(p).Glyph().Char())
			}
		}
		fmt.Fprintln(out, b.String())
	}
}
