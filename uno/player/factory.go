package player

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats the human first and fills the table with bots. Bot names come from names
// when given, otherwise from a shuffled pool.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, names []string, rng *rand.Rand) ([]game.PlayerSpec, error) {
	if numberOfPlayers < consts.MinPlayers || numberOfPlayers > consts.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players, want %d to %d",
			consts.ErrorsGamePlayersInvalid, numberOfPlayers, consts.MinPlayers, consts.MaxPlayers)
	}
	players := make([]game.PlayerSpec, 0, numberOfPlayers)
	players = append(players, game.PlayerSpec{Name: humanPlayerName, Human: true})
	players = append(players, generateBots(numberOfPlayers-1, humanPlayerName, names, rng)...)
	return players, nil
}

func generateBots(amount int, humanPlayerName string, names []string, rng *rand.Rand) []game.PlayerSpec {
	pool := make([]string, len(botNames))
	copy(pool, botNames)
	rng.Shuffle(len(pool), func(i int, j int) { pool[i], pool[j] = pool[j], pool[i] })
	pool = append(append([]string{}, names...), pool...)

	taken := map[string]bool{humanPlayerName: true}
	bots := make([]game.PlayerSpec, 0, amount)
	for _, botName := range pool {
		if len(bots) == amount {
			break
		}
		if botName == "" || taken[botName] {
			continue
		}
		taken[botName] = true
		bots = append(bots, game.PlayerSpec{Name: botName})
	}
	return bots
}
