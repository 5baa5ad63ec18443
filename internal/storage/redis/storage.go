package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Tournaments and players are JSON strings. Enrollments are hashes so the
// verified flag and kill count can be updated field by field.
type Storage struct {
	client *redis.Client
	cfg    Config
	now    func() time.Time
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ping checks the connection
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// enrollmentHash is the stored shape of an enrollment
type enrollmentHash struct {
	ID              int64 `redis:"id"`
	PlayerID        int64 `redis:"jugador_id"`
	TournamentID    int64 `redis:"torneo_id"`
	PaymentVerified bool  `redis:"pago_verificado"`
	Kills           int   `redis:"kills"`
	CreatedAtUnixMs int64 `redis:"created_at"`
}

func (h enrollmentHash) toModel() model.Enrollment {
	return model.Enrollment{
		ID:              h.ID,
		PlayerID:        h.PlayerID,
		TournamentID:    h.TournamentID,
		PaymentVerified: h.PaymentVerified,
		Kills:           h.Kills,
		CreatedAt:       time.UnixMilli(h.CreatedAtUnixMs),
	}
}

// nextID issues the next id for an entity
func (s *Storage) nextID(ctx context.Context, entity string) (int64, error) {
	return s.client.Incr(ctx, sequenceKey(entity)).Result()
}

// createdAt truncates to the stored precision so callers see what a later read returns
func (s *Storage) createdAt() time.Time {
	return time.UnixMilli(s.now().UnixMilli())
}

// saveJSON stores a JSON document and indexes its id in one transaction
func (s *Storage) saveJSON(ctx context.Context, entity, key string, id int64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, indexKey(entity), redis.Z{Score: float64(id), Member: id})
	_, err = pipe.Exec(ctx)
	return err
}

// indexedIDs returns every indexed id of an entity in ascending order
func (s *Storage) indexedIDs(ctx context.Context, entity string) ([]int64, error) {
	members, err := s.client.ZRange(ctx, indexKey(entity), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt %s index member %q: %w", entity, m, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// loadJSON fetches the JSON documents under keys, skipping missing ones
func loadJSON[T any](ctx context.Context, client *redis.Client, keys []string) ([]T, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(values))
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(str), &item); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, item)
	}
	return out, nil
}

// Tournament operations

func (s *Storage) CreateTournament(ctx context.Context, tournament *model.Tournament) error {
	id, err := s.nextID(ctx, entityTournament)
	if err != nil {
		return err
	}

	created := *tournament
	created.ID = id
	created.CreatedAt = s.createdAt()

	if err := s.saveJSON(ctx, entityTournament, tournamentKey(id), id, &created); err != nil {
		return err
	}
	*tournament = created
	return nil
}

func (s *Storage) ListTournaments(ctx context.Context) ([]model.Tournament, error) {
	ids, err := s.indexedIDs(ctx, entityTournament)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, tournamentKey(id))
	}

	tournaments, err := loadJSON[model.Tournament](ctx, s.client, keys)
	if err != nil {
		return nil, err
	}
	if tournaments == nil {
		tournaments = []model.Tournament{}
	}
	return tournaments, nil
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	id, err := s.nextID(ctx, entityPlayer)
	if err != nil {
		return err
	}

	created := *player
	created.ID = id
	created.CreatedAt = s.createdAt()

	if err := s.saveJSON(ctx, entityPlayer, playerKey(id), id, &created); err != nil {
		return err
	}
	*player = created
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]model.Player, error) {
	ids, err := s.indexedIDs(ctx, entityPlayer)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, playerKey(id))
	}

	players, err := loadJSON[model.Player](ctx, s.client, keys)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []model.Player{}
	}
	return players, nil
}

// Enrollment operations

func (s *Storage) CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error {
	exists, err := s.client.Exists(ctx, playerKey(enrollment.PlayerID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrPlayerNotFound
	}
	exists, err = s.client.Exists(ctx, tournamentKey(enrollment.TournamentID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrTournamentNotFound
	}

	id, err := s.nextID(ctx, entityEnrollment)
	if err != nil {
		return err
	}

	created := *enrollment
	created.ID = id
	created.CreatedAt = s.createdAt()

	hash := enrollmentHash{
		ID:              created.ID,
		PlayerID:        created.PlayerID,
		TournamentID:    created.TournamentID,
		PaymentVerified: created.PaymentVerified,
		Kills:           created.Kills,
		CreatedAtUnixMs: created.CreatedAt.UnixMilli(),
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, enrollmentKey(id), hash)
	pipe.ZAdd(ctx, indexKey(entityEnrollment), redis.Z{Score: float64(id), Member: id})
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	*enrollment = created
	return nil
}

func (s *Storage) GetEnrollment(ctx context.Context, id int64) (*model.Enrollment, error) {
	res := s.client.HGetAll(ctx, enrollmentKey(id))
	fields, err := res.Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, model.ErrEnrollmentNotFound
	}

	var hash enrollmentHash
	if err := res.Scan(&hash); err != nil {
		return nil, err
	}
	enrollment := hash.toModel()
	return &enrollment, nil
}

func (s *Storage) ListEnrollments(ctx context.Context, filter model.EnrollmentFilter) ([]model.EnrollmentDetail, error) {
	ids, err := s.indexedIDs(ctx, entityEnrollment)
	if err != nil {
		return nil, err
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipe.HGetAll(ctx, enrollmentKey(id)))
	}
	if len(cmds) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, err
		}
	}

	enrollments := make([]model.Enrollment, 0, len(cmds))
	playerIDs := map[int64]struct{}{}
	tournamentIDs := map[int64]struct{}{}
	for _, cmd := range cmds {
		if len(cmd.Val()) == 0 {
			continue
		}
		var hash enrollmentHash
		if err := cmd.Scan(&hash); err != nil {
			return nil, err
		}
		e := hash.toModel()
		if !filter.Matches(e) {
			continue
		}
		enrollments = append(enrollments, e)
		playerIDs[e.PlayerID] = struct{}{}
		tournamentIDs[e.TournamentID] = struct{}{}
	}

	players, err := s.playersByID(ctx, playerIDs)
	if err != nil {
		return nil, err
	}
	tournaments, err := s.tournamentsByID(ctx, tournamentIDs)
	if err != nil {
		return nil, err
	}

	details := make([]model.EnrollmentDetail, 0, len(enrollments))
	for _, e := range enrollments {
		details = append(details, model.EnrollmentDetail{
			Enrollment: e,
			Player:     players[e.PlayerID],
			Tournament: tournaments[e.TournamentID],
		})
	}
	return details, nil
}

func (s *Storage) playersByID(ctx context.Context, ids map[int64]struct{}) (map[int64]model.Player, error) {
	keys := make([]string, 0, len(ids))
	for id := range ids {
		keys = append(keys, playerKey(id))
	}
	players, err := loadJSON[model.Player](ctx, s.client, keys)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID, nil
}

func (s *Storage) tournamentsByID(ctx context.Context, ids map[int64]struct{}) (map[int64]model.Tournament, error) {
	keys := make([]string, 0, len(ids))
	for id := range ids {
		keys = append(keys, tournamentKey(id))
	}
	tournaments, err := loadJSON[model.Tournament](ctx, s.client, keys)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Tournament, len(tournaments))
	for _, t := range tournaments {
		byID[t.ID] = t
	}
	return byID, nil
}

func (s *Storage) SetPaymentVerified(ctx context.Context, id int64) error {
	return s.setEnrollmentField(ctx, id, "pago_verificado", true)
}

func (s *Storage) SetKills(ctx context.Context, id int64, kills int) error {
	return s.setEnrollmentField(ctx, id, "kills", kills)
}

func (s *Storage) setEnrollmentField(ctx context.Context, id int64, field string, value any) error {
	key := enrollmentKey(id)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrEnrollmentNotFound
	}
	return s.client.HSet(ctx, key, field, value).Err()
}
