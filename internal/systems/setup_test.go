package systems

import (
	"bombquest/internal/domain"
	"bombquest/pkg/logger"
	"math/rand"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// createTestGame строит игру по ASCII-схеме: '#' камень, 'B' ящик, 'K' ключ,
// 'P' игрок, 'M' монстр (Idle), 'o' бомба с радиусом 1.
func createTestGame(rows ...string) *domain.Game {
	dim := domain.Dimension{Width: len(rows[0]), Height: len(rows)}
	world := domain.NewWorld(1, dim)
	player := domain.NewPlayer(domain.Position{})
	g := domain.NewGame(world, player, domain.Rules{BombFuse: 10, InvulnerableTicks: 5}, rand.New(rand.NewSource(42)))

	for y, row := range rows {
		for x, ch := range row {
			p := domain.Position{X: x, Y: y}
			switch ch {
			case '#':
				world.Set(p, domain.DecorStone)
			case 'B':
				world.Set(p, domain.DecorBox)
			case 'K':
				world.Set(p, domain.DecorKey)
			case 'P':
				player.Pos = p
			case 'M':
				g.Monsters = append(g.Monsters, domain.NewMonster(p, Idle{}, 1, 0))
			case 'o':
				g.AddBomb(domain.NewBomb(p, 0, 10, 1))
			}
		}
	}
	world.SetChanged(false)
	return g
}
