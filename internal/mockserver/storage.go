// Package mockserver — встроенный REST-сервер, имитирующий CI-сервер
// TeamCity-образного API. Нужен, чтобы гонять слой requests и
// сгенерированные тестовые данные без внешнего стенда.
package mockserver

import (
	"context"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"stend/internal/pg"
	"stend/internal/reference"

	"github.com/oklog/ulid/v2"
)

// имена коллекций соответствуют REST-ресурсам
const (
	ColProjects   = "projects"
	ColBuildTypes = "buildTypes"
	ColUsers      = "users"
)

type Record struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	Data      map[string]interface{} `json:"data"`
}

type Storage struct {
	mu      sync.RWMutex
	Data    map[string]map[string]*Record // коллекция -> id -> запись
	Roles   reference.RoleDirectory       // справочник ролей для валидации
	entropy io.Reader
	store   *pg.Store // опциональная персистентность, может быть nil
}

// NewStorage готовит пустое in-memory хранилище.
func NewStorage(roles reference.RoleDirectory) *Storage {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := &Storage{
		Data:    make(map[string]map[string]*Record),
		Roles:   roles,
		entropy: ulid.Monotonic(src, 0),
	}
	for _, col := range []string{ColProjects, ColBuildTypes, ColUsers} {
		s.Data[col] = make(map[string]*Record)
	}
	return s
}

func (s *Storage) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// AttachPersistence подключает Postgres-зеркало: существующие записи
// поднимаются в память, дальнейшие изменения дублируются в базу.
func (s *Storage) AttachPersistence(ctx context.Context, store *pg.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for col := range s.Data {
		rows, err := store.LoadAll(ctx, col)
		if err != nil {
			return err
		}
		for id, data := range rows {
			s.Data[col][id] = &Record{ID: id, Data: data, CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
		}
	}
	s.store = store
	return nil
}

// Put кладет запись в коллекцию (создание или полная замена).
func (s *Storage) Put(col, id string, data map[string]interface{}) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	rec, exists := s.Data[col][id]
	if !exists {
		rec = &Record{ID: id, CreatedAt: now}
		s.Data[col][id] = rec
	}
	rec.UpdatedAt = now
	rec.Data = data

	if s.store != nil {
		if err := s.store.Save(context.Background(), col, id, data); err != nil {
			log.Printf("pg mirror: save %s/%s: %v", col, id, err)
		}
	}
	return rec
}

// Get возвращает запись по id.
func (s *Storage) Get(col, id string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.Data[col][id]
	return rec, ok
}

// FindBy ищет первую запись, у которой поле Data[field] равно value.
func (s *Storage) FindBy(col, field, value string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.Data[col] {
		if v, _ := rec.Data[field].(string); v == value {
			return rec, true
		}
	}
	return nil, false
}

// Delete убирает запись; сообщает, была ли она.
func (s *Storage) Delete(col, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Data[col][id]; !ok {
		return false
	}
	delete(s.Data[col], id)

	if s.store != nil {
		if err := s.store.Remove(context.Background(), col, id); err != nil {
			log.Printf("pg mirror: delete %s/%s: %v", col, id, err)
		}
	}
	return true
}

// Exists — есть ли запись с таким id.
func (s *Storage) Exists(col, id string) bool {
	_, ok := s.Get(col, id)
	return ok
}
