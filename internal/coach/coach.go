// Package coach wraps the external generative-AI collaborator. The rest of
// the app treats it as an opaque request/response boundary: a failed or
// malformed response surfaces as an error and leaves the ledger untouched.
package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
)

// Client is the opaque collaborator interface. GenerateJSON decodes the
// structured response into out; a response that fails to parse is an error,
// never a panic.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string, out any) error
	GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error)
}

// ErrBusy is returned while a request for the same feature is in flight.
// Requests are serialized per feature, never queued.
var ErrBusy = errors.New("coach request already in flight")

// Snapshot is the serialized ledger/profile view fed into prompts.
type Snapshot struct {
	Profile  ledger.Profile
	Points   int
	XP       int
	Level    int
	Streak   int
	Strikes  int
	Hardcore bool
	Missions []ledger.Mission
}

// WorkoutPlan is the structured training plan returned by the collaborator.
type WorkoutPlan struct {
	Split string       `json:"split"`
	Days  []WorkoutDay `json:"days"`
}

type WorkoutDay struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	Name         string `json:"name"`
	Sets         string `json:"sets"`
	Reps         string `json:"reps"`
	Substitution string `json:"substitution,omitempty"`
	Tip          string `json:"tip,omitempty"`
}

// DietPlan is the structured diet returned by the collaborator.
type DietPlan struct {
	Calories int    `json:"calories"`
	Meals    []Meal `json:"meals"`
}

type Meal struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Coach issues collaborator requests with a per-feature in-flight guard.
type Coach struct {
	client Client
	log    *zap.Logger

	mu   sync.Mutex
	busy map[string]bool
}

func New(client Client, log *zap.Logger) *Coach {
	return &Coach{
		client: client,
		log:    log,
		busy:   map[string]bool{},
	}
}

func (c *Coach) acquire(feature string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy[feature] {
		return ErrBusy
	}
	c.busy[feature] = true
	return nil
}

func (c *Coach) release(feature string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy[feature] = false
}

// Motivate returns a short motivational speech in the profile's tone.
func (c *Coach) Motivate(ctx context.Context, snap Snapshot) (string, error) {
	if err := c.acquire("motivate"); err != nil {
		return "", err
	}
	defer c.release("motivate")

	text, err := c.client.GenerateText(ctx, motivatePrompt(snap))
	if err != nil {
		c.log.Warn("motivation request failed", zap.Error(err))
		return "", fmt.Errorf("generate motivation: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// GenerateWorkout returns a structured training plan for the profile.
func (c *Coach) GenerateWorkout(ctx context.Context, snap Snapshot) (*WorkoutPlan, error) {
	if err := c.acquire("workout"); err != nil {
		return nil, err
	}
	defer c.release("workout")

	var plan WorkoutPlan
	if err := c.client.GenerateJSON(ctx, workoutPrompt(snap), &plan); err != nil {
		c.log.Warn("workout request failed", zap.Error(err))
		return nil, fmt.Errorf("generate workout plan: %w", err)
	}
	return &plan, nil
}

// GenerateDiet returns a structured diet plan for the profile.
func (c *Coach) GenerateDiet(ctx context.Context, snap Snapshot) (*DietPlan, error) {
	if err := c.acquire("diet"); err != nil {
		return nil, err
	}
	defer c.release("diet")

	var plan DietPlan
	if err := c.client.GenerateJSON(ctx, dietPrompt(snap), &plan); err != nil {
		c.log.Warn("diet request failed", zap.Error(err))
		return nil, fmt.Errorf("generate diet plan: %w", err)
	}
	return &plan, nil
}

// Speak renders text as speech audio.
func (c *Coach) Speak(ctx context.Context, text, voice string) ([]byte, error) {
	if err := c.acquire("speak"); err != nil {
		return nil, err
	}
	defer c.release("speak")

	audio, err := c.client.GenerateSpeech(ctx, text, voice)
	if err != nil {
		c.log.Warn("speech request failed", zap.Error(err))
		return nil, fmt.Errorf("generate speech: %w", err)
	}
	return audio, nil
}

func profileLine(snap Snapshot) string {
	p := snap.Profile
	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s. Idade: %s. Peso: %s. Altura: %s.", p.Name, p.Age, p.Weight, p.Height)
	fmt.Fprintf(&b, " Nível %d, %d pontos, streak de %d dias.", snap.Level, snap.Points, snap.Streak)
	if snap.Hardcore {
		fmt.Fprintf(&b, " Modo hardcore ativo com %d strikes.", snap.Strikes)
	}
	return b.String()
}

func motivatePrompt(snap Snapshot) string {
	tone := snap.Profile.Tone
	if tone == "" {
		tone = ledger.DefaultTone
	}
	return fmt.Sprintf(
		"Você é um coach de disciplina com tom %s. %s Escreva um discurso motivacional curto (máximo 120 palavras) em português.",
		tone, profileLine(snap))
}

func workoutPrompt(snap Snapshot) string {
	return fmt.Sprintf(
		"Monte um plano de treino semanal para este perfil: %s Responda apenas com JSON no formato {split, days:[{day, focus, exercises:[{name, sets, reps, substitution, tip}]}]}.",
		profileLine(snap))
}

func dietPrompt(snap Snapshot) string {
	return fmt.Sprintf(
		"Monte um plano alimentar diário para este perfil: %s Responda apenas com JSON no formato {calories, meals:[{name, items}]}.",
		profileLine(snap))
}
