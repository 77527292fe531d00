package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeontower/internal/geom"
	"github.com/samdwyer/dungeontower/internal/telemetry"
)

const (
	// Root room dimensions used by the viewer
	DefaultRootWidth  = 30
	DefaultRootHeight = 16

	// DefaultMaxAttempts bounds placement retries for a single room.
	DefaultMaxAttempts = 1000

	// Random room size ranges, upper bound exclusive
	minRoomWidth  = 20
	maxRoomWidth  = 48
	minRoomHeight = 10
	maxRoomHeight = 24
)

// Config holds generation limits.
type Config struct {
	// MaxAttempts is how many placements AttachRoom tries before giving up.
	MaxAttempts int

	// Size ranges for AddRoom. Max values are exclusive.
	MinRoomWidth, MaxRoomWidth   int
	MinRoomHeight, MaxRoomHeight int
}

// DefaultConfig returns the standard generation limits.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:   DefaultMaxAttempts,
		MinRoomWidth:  minRoomWidth,
		MaxRoomWidth:  maxRoomWidth,
		MinRoomHeight: minRoomHeight,
		MaxRoomHeight: maxRoomHeight,
	}
}

// Validate checks the limits are usable.
func (c Config) Validate() error {
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.MinRoomWidth < MinRoomSide || c.MaxRoomWidth <= c.MinRoomWidth {
		return fmt.Errorf("%w: width range [%d,%d)", ErrInvalidDimensions, c.MinRoomWidth, c.MaxRoomWidth)
	}
	if c.MinRoomHeight < MinRoomSide || c.MaxRoomHeight <= c.MinRoomHeight {
		return fmt.Errorf("%w: height range [%d,%d)", ErrInvalidDimensions, c.MinRoomHeight, c.MaxRoomHeight)
	}
	return nil
}

// Dungeon grows a room graph from a root room. The graph has no container:
// its rooms are whatever is reachable from the root.
type Dungeon struct {
	root   *Room
	cfg    Config
	rng    Source
	tiles  TileFactory
	log    logr.Logger
	tracer trace.Tracer
}

// NewDungeon creates a generator around an existing root room.
func NewDungeon(root *Room, rng Source, tiles TileFactory, cfg Config) (*Dungeon, error) {
	if root == nil {
		return nil, errors.New("dungeon needs a root room")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Dungeon{
		root:   root,
		cfg:    cfg,
		rng:    rng,
		tiles:  tiles,
		log:    logr.Discard(),
		tracer: telemetry.Tracer("world"),
	}, nil
}

// SetLogger replaces the discard logger.
func (d *Dungeon) SetLogger(log logr.Logger) {
	d.log = log
}

// SetTracer replaces the global "world" tracer.
func (d *Dungeon) SetTracer(tracer trace.Tracer) {
	d.tracer = tracer
}

// Root returns the room every other room is reachable from.
func (d *Dungeon) Root() *Room {
	return d.root
}

// Rooms returns the rooms currently reachable from the root.
func (d *Dungeon) Rooms() []*Room {
	return CollectReachableRooms(d.root)
}

// HasCollision reports whether any two rooms overlap.
func (d *Dungeon) HasCollision() bool {
	return HasAnyCollision(d.root)
}

// Generate attaches count random rooms, stopping at the first failure.
func (d *Dungeon) Generate(ctx context.Context, count int) error {
	ctx, span := d.tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	for i := 0; i < count; i++ {
		if _, err := d.AddRoom(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("generate room %d of %d: %w", i+1, count, err)
		}
	}

	span.SetAttributes(
		attribute.Int("dungeon.requested_rooms", count),
		attribute.Int("dungeon.room_count", len(d.Rooms())),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// NewRandomRoom creates an unattached room with a random size from the config.
func (d *Dungeon) NewRandomRoom() (*Room, error) {
	size := geom.Pt(
		uniformInt(d.rng, d.cfg.MinRoomWidth, d.cfg.MaxRoomWidth),
		uniformInt(d.rng, d.cfg.MinRoomHeight, d.cfg.MaxRoomHeight),
	)
	return NewRoom(geom.Pt(0, 0), size, d.tiles)
}

// AddRoom creates a randomly sized room and attaches it.
func (d *Dungeon) AddRoom(ctx context.Context) (*Room, error) {
	room, err := d.NewRandomRoom()
	if err != nil {
		return nil, err
	}
	if err := d.AttachRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// AttachRoom places room against a random free wall of a random reachable
// room, retrying with a fresh choice after every collision. It gives up with
// ErrPlacementRetriesExhausted after cfg.MaxAttempts tries. On failure the
// graph is left as it was.
func (d *Dungeon) AttachRoom(ctx context.Context, room *Room) error {
	ctx, span := d.tracer.Start(ctx, "dungeon.attach_room")
	defer span.End()

	if err := d.checkCandidate(room); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(
		attribute.String("room.id", room.ID.String()),
		attribute.Int("room.width", room.Width()),
		attribute.Int("room.height", room.Height()),
	)

	attempts := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempts++
		return struct{}{}, d.attachOnce(ctx, room, attempts)
	},
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(uint(d.cfg.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Unwrap()
	}
	if errors.Is(err, ErrCollision) {
		err = fmt.Errorf("%w: room %s after %d attempts: %w", ErrPlacementRetriesExhausted, room.ID, attempts, err)
	}

	span.SetAttributes(attribute.Int("dungeon.attempts", attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.log.Error(err, "room not attached", "room", room.ID.String(), "attempts", attempts)
		return err
	}

	rooms := len(d.Rooms())
	span.SetAttributes(attribute.Int("dungeon.room_count", rooms))
	d.log.Info("room attached",
		"room", room.ID.String(),
		"center", room.Center().String(),
		"attempts", attempts,
		"rooms", rooms,
	)
	return nil
}

// attachOnce makes one placement attempt. Collisions are returned as-is so
// the caller retries; anything else, cancellation included, is permanent.
func (d *Dungeon) attachOnce(ctx context.Context, room *Room, attempt int) error {
	if err := ctx.Err(); err != nil {
		return backoff.Permanent(err)
	}

	var valid []*Room
	for _, r := range d.Rooms() {
		if len(r.EmptyDirections()) > 0 {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return backoff.Permanent(ErrNoAttachableRoom)
	}

	from := valid[d.rng.Intn(len(valid))]
	free := from.EmptyDirections()
	dir := free[d.rng.Intn(len(free))]
	start := randomAnchor(from.Rect(), dir, d.rng)

	err := d.place(from, dir, start, room)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrCollision):
		d.log.V(1).Info("placement rejected",
			"room", room.ID.String(),
			"attempt", attempt,
			"from", from.ID.String(),
			"direction", dir.String(),
			"reason", err.Error(),
		)
		return err
	default:
		return backoff.Permanent(err)
	}
}

// Place makes a single placement of room through the given wall of from,
// leaving at start. It returns ErrCollision, with the graph unchanged, if the
// placed room would overlap another.
func (d *Dungeon) Place(from *Room, dir geom.Direction, start geom.Point, room *Room) error {
	if !dir.Valid() {
		return fmt.Errorf("invalid direction %d", int(dir))
	}
	if err := d.checkCandidate(room); err != nil {
		return err
	}
	if !d.contains(from) {
		return errors.New("origin room is not part of the dungeon")
	}
	if from.Branch(dir) != nil {
		return fmt.Errorf("%w: %s slot of room %s", ErrSlotOccupied, dir, from.ID)
	}
	if !onWall(from.Rect(), dir, start) {
		return fmt.Errorf("%w: %v is not on the %s wall of room %s", ErrInvalidAnchor, start, dir, from.ID)
	}
	return d.place(from, dir, start, room)
}

func (d *Dungeon) place(from *Room, dir geom.Direction, start geom.Point, room *Room) error {
	branch := NewBranch(dir)
	branch.SetStart(start)
	branch.SetDestination(room)
	from.SetBranch(dir, branch)

	room.center = landingCenter(branch.DestinationPoint(), dir, room.size)

	if a, b, found := FindCollision(d.root); found {
		from.SetBranch(dir, nil)
		return fmt.Errorf("%w: room %s overlaps room %s", ErrCollision, a.ID, b.ID)
	}
	return nil
}

// checkCandidate rejects rooms that already have branches or are reachable.
func (d *Dungeon) checkCandidate(room *Room) error {
	if room == nil {
		return errors.New("nil room")
	}
	if room.hasBranches() || d.contains(room) {
		return fmt.Errorf("%w: %s", ErrRoomAttached, room.ID)
	}
	return nil
}

func (d *Dungeon) contains(room *Room) bool {
	for _, r := range d.Rooms() {
		if r == room {
			return true
		}
	}
	return false
}

// randomAnchor picks a point on the wall facing dir, corners excluded.
func randomAnchor(rect geom.Rect, dir geom.Direction, rng Source) geom.Point {
	switch dir {
	case geom.Up:
		return geom.Pt(uniformInt(rng, rect.Left()+1, rect.Right()), rect.Top())
	case geom.Right:
		return geom.Pt(rect.Right(), uniformInt(rng, rect.Top()+1, rect.Bottom()))
	case geom.Down:
		return geom.Pt(uniformInt(rng, rect.Left()+1, rect.Right()), rect.Bottom())
	case geom.Left:
		return geom.Pt(rect.Left(), uniformInt(rng, rect.Top()+1, rect.Bottom()))
	}
	panic(fmt.Sprintf("world: invalid direction %d", int(dir)))
}

// onWall reports whether p is a non-corner tile of the wall facing dir.
func onWall(rect geom.Rect, dir geom.Direction, p geom.Point) bool {
	inX := p.X > rect.Left() && p.X < rect.Right()
	inY := p.Y > rect.Top() && p.Y < rect.Bottom()

	switch dir {
	case geom.Up:
		return p.Y == rect.Top() && inX
	case geom.Right:
		return p.X == rect.Right() && inY
	case geom.Down:
		return p.Y == rect.Bottom() && inX
	case geom.Left:
		return p.X == rect.Left() && inY
	}
	panic(fmt.Sprintf("world: invalid direction %d", int(dir)))
}

// landingCenter returns the center that puts the wall of a room of the given
// size facing back along dir exactly on dest.
func landingCenter(dest geom.Point, dir geom.Direction, size geom.Point) geom.Point {
	half := size.Half()

	switch dir {
	case geom.Up:
		return geom.Pt(dest.X, dest.Y-(size.Y-1)+half.Y)
	case geom.Right:
		return geom.Pt(dest.X+half.X, dest.Y)
	case geom.Down:
		return geom.Pt(dest.X, dest.Y+half.Y)
	case geom.Left:
		return geom.Pt(dest.X-(size.X-1)+half.X, dest.Y)
	}
	panic(fmt.Sprintf("world: invalid direction %d", int(dir)))
}

// RoomAt returns the reachable room containing p, or nil.
func (d *Dungeon) RoomAt(p geom.Point) *Room {
	for _, room := range d.Rooms() {
		if room.Rect().Contains(p) {
			return room
		}
	}
	return nil
}

// Doorways returns world-space doorway tiles at both ends of every linked branch.
func (d *Dungeon) Doorways() []*Tile {
	var doors []*Tile
	for _, room := range d.Rooms() {
		for _, dir := range geom.Directions {
			branch := room.Branch(dir)
			if branch == nil || branch.IsOpen() {
				continue
			}
			doors = append(doors,
				d.tiles.NewTile(branch.Start(), TileDoorway),
				d.tiles.NewTile(branch.DestinationPoint(), TileDoorway),
			)
		}
	}
	return doors
}

// IsPassable returns true if the world position can be walked on.
func (d *Dungeon) IsPassable(p geom.Point) bool {
	for _, door := range d.Doorways() {
		if door.Pos == p {
			return door.IsPassable()
		}
	}

	room := d.RoomAt(p)
	if room == nil {
		return false
	}
	tile, err := room.Tile(p.Sub(room.Rect().Min()))
	if err != nil || tile == nil {
		return false
	}
	return tile.IsPassable()
}
