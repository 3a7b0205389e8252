// storage/phrases.go
package storage

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"clinicflash-backend/models"
)

// MaxSavedPhrases caps the phrase list; the least-used entries are
// evicted first.
const MaxSavedPhrases = 10

// PhraseStore persists reusable input phrases under
// clinic_saved_phrases.
type PhraseStore struct {
	kv  KV
	now func() time.Time
}

func NewPhraseStore(kv KV) *PhraseStore {
	return &PhraseStore{kv: kv, now: time.Now}
}

func (s *PhraseStore) defaultPhrases() []models.SavedPhrase {
	createdAt := s.now().Format(time.RFC3339)
	texts := []string{
		"予約したいです",
		"料金を教えてください",
		"キャンセルしたいです",
		"営業時間は？",
		"麻酔は使えますか？",
	}
	phrases := make([]models.SavedPhrase, 0, len(texts))
	for i, text := range texts {
		phrases = append(phrases, models.SavedPhrase{
			ID:        fmt.Sprintf("default-%d", i+1),
			Text:      text,
			CreatedAt: createdAt,
		})
	}
	return phrases
}

// Load returns the stored phrases, seeding defaults when nothing was
// saved yet.
func (s *PhraseStore) Load() ([]models.SavedPhrase, error) {
	var phrases []models.SavedPhrase
	ok, err := getJSON(s.kv, KeySavedPhrases, &phrases)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.defaultPhrases(), nil
	}
	return phrases, nil
}

func (s *PhraseStore) persist(phrases []models.SavedPhrase) error {
	return setJSON(s.kv, KeySavedPhrases, phrases)
}

// Save stores a phrase. An existing phrase (case-insensitive match) has
// its usage count bumped instead; past the cap the least-used phrases
// are dropped.
func (s *PhraseStore) Save(text string) (models.SavedPhrase, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.SavedPhrase{}, fmt.Errorf("empty phrase")
	}

	phrases, err := s.Load()
	if err != nil {
		return models.SavedPhrase{}, err
	}

	for i := range phrases {
		if strings.EqualFold(phrases[i].Text, text) {
			phrases[i].UsageCount++
			if err := s.persist(phrases); err != nil {
				return models.SavedPhrase{}, err
			}
			return phrases[i], nil
		}
	}

	phrase := models.SavedPhrase{
		ID:         fmt.Sprintf("phrase-%d", s.now().UnixMilli()),
		Text:       text,
		UsageCount: 1,
		CreatedAt:  s.now().Format(time.RFC3339),
	}
	phrases = append([]models.SavedPhrase{phrase}, phrases...)

	if len(phrases) > MaxSavedPhrases {
		sort.SliceStable(phrases, func(i, j int) bool {
			return phrases[i].UsageCount > phrases[j].UsageCount
		})
		phrases = phrases[:MaxSavedPhrases]
	}

	if err := s.persist(phrases); err != nil {
		return models.SavedPhrase{}, err
	}
	for _, p := range phrases {
		if p.Text == text {
			return p, nil
		}
	}
	return models.SavedPhrase{}, fmt.Errorf("phrase evicted on save")
}

func (s *PhraseStore) Delete(phraseID string) error {
	phrases, err := s.Load()
	if err != nil {
		return err
	}
	kept := phrases[:0]
	for _, p := range phrases {
		if p.ID != phraseID {
			kept = append(kept, p)
		}
	}
	return s.persist(kept)
}

func (s *PhraseStore) IncrementUsage(phraseID string) error {
	phrases, err := s.Load()
	if err != nil {
		return err
	}
	for i := range phrases {
		if phrases[i].ID == phraseID {
			phrases[i].UsageCount++
			return s.persist(phrases)
		}
	}
	return nil
}

// Reset replaces everything with the default phrases.
func (s *PhraseStore) Reset() error {
	return s.persist(s.defaultPhrases())
}

// OrderedByUsage returns phrases sorted most-used first.
func (s *PhraseStore) OrderedByUsage() ([]models.SavedPhrase, error) {
	phrases, err := s.Load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(phrases, func(i, j int) bool {
		return phrases[i].UsageCount > phrases[j].UsageCount
	})
	return phrases, nil
}
