package ledger

// Seed data for the Protocolo de Disciplina catalog.
// Labels are product copy and stay in Portuguese.

// DefaultTone is the coach tone used until the user picks one.
const DefaultTone = "brutal"

// BaseMissions returns a fresh copy of the five starter missions.
func BaseMissions() []Mission {
	return []Mission{
		{ID: "wakeup", Label: "Acordar antes das 6h", Points: 50},
		{ID: "workout", Label: "Treino (45m+)", Points: 100},
		{ID: "water", Label: "Beber 3L de Água", Points: 30},
		{ID: "reading", Label: "Ler 10 Páginas", Points: 40},
		{ID: "diet", Label: "Dieta Limpa (Sem Açúcar)", Points: 60},
	}
}

// Suggestion is a mission template offered by the suggestion pool.
type Suggestion struct {
	Label  string
	Points int
}

var SuggestedMissions = []Suggestion{
	{Label: "Meditação (10m)", Points: 30},
	{Label: "Sem Redes Sociais", Points: 80},
	{Label: "Banho Gelado", Points: 50},
	{Label: "Jejum (16h)", Points: 60},
	{Label: "Estudo Focado (1h)", Points: 70},
	{Label: "Arrumar a Cama", Points: 20},
	{Label: "Journaling", Points: 40},
	{Label: "Sem Álcool", Points: 50},
	{Label: "Zero Telas (1h antes de dormir)", Points: 60},
	{Label: "Alongamento / Mobilidade", Points: 30},
	{Label: "Planejar o dia seguinte", Points: 25},
	{Label: "Caminhada ao Sol", Points: 40},
	{Label: "Agradecimento (3 coisas)", Points: 20},
}

// Reward is a shop catalog item bought with discipline points.
type Reward struct {
	ID    string
	Label string
	Cost  int
	Icon  string
}

var Rewards = []Reward{
	{ID: "cheat_meal", Label: "Refeição Livre", Cost: 500, Icon: "🍔"},
	{ID: "movie_night", Label: "Noite de Filme", Cost: 300, Icon: "🎬"},
	{ID: "day_off", Label: "Dia de Descanso", Cost: 1000, Icon: "🛌"},
	{ID: "buy_game", Label: "Comprar Jogo", Cost: 2000, Icon: "🎮"},
}

// RewardByID returns the catalog entry with the given id, or nil.
func RewardByID(id string) *Reward {
	for i := range Rewards {
		if Rewards[i].ID == id {
			return &Rewards[i]
		}
	}
	return nil
}

// RealityChecks is the fixed pool of messages surfaced on a failed mission.
// Selection is uniform over the pool.
var RealityChecks = []string{
	"Você cancelou porque foi difícil. A vida não vai facilitar.",
	"Disciplina é fazer o que você odeia, mas fazer como se amasse.",
	"Cada missão perdida é um voto para a pessoa que você não quer ser.",
	"Ninguém virá te salvar. Depende tudo de você.",
	"O conforto é o inimigo do progresso.",
	"Não negocie com você mesmo. A missão é absoluta.",
	"A mediocridade é uma escolha que você está fazendo agora.",
	"Sofra a dor da disciplina ou sofra a dor do arrependimento.",
}
