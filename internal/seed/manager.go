package seed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ekisa-team/campus/internal/config"
	"github.com/ekisa-team/campus/internal/registry"
	"github.com/ekisa-team/campus/internal/roster"
)

// Manager builds registries from rosters and holds the current one.
type Manager struct {
	registry *registry.Registry
	logger   *slog.Logger
	newID    func() string
	mu       sync.RWMutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger handed to the manager and its registries.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithIDGenerator replaces the generator used for people declared without an ID.
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) {
		m.newID = newID
	}
}

// NewManager creates a Manager holding an empty registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		logger: slog.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.registry = registry.New(registry.WithLogger(m.logger))

	return m
}

// Registry returns the current registry.
func (m *Manager) Registry() *registry.Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry
}

// LoadFromConfig builds a fresh registry from cfg and swaps it in. The
// current registry is kept when seeding fails.
func (m *Manager) LoadFromConfig(ctx context.Context, cfg *config.Config) error {
	reg := registry.New(RegistryOptions(cfg, m.logger)...)

	summary, err := m.Apply(ctx, reg, cfg)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	m.mu.Lock()
	m.registry = reg
	m.mu.Unlock()

	m.logger.Info("Roster loaded into registry",
		"students", len(cfg.Students),
		"instructors", len(cfg.Instructors),
		"courses", len(cfg.Courses),
		"applied", summary.Applied,
		"skipped", summary.Skipped,
	)

	return nil
}

// RegistryOptions translates the roster's registry toggles.
func RegistryOptions(cfg *config.Config, logger *slog.Logger) []registry.Option {
	opts := []registry.Option{registry.WithLogger(logger)}
	if cfg.Registry.AllowIDCollisions {
		opts = append(opts, registry.WithIDCollisions())
	}
	if cfg.Registry.OrphanEnrollments {
		opts = append(opts, registry.WithOrphanedEnrollments())
	}

	return opts
}

// Apply writes instructors, students, courses and enrollments from cfg into
// store, in that order.
func (m *Manager) Apply(ctx context.Context, store Store, cfg *config.Config) (Summary, error) {
	var summary Summary

	for _, ic := range cfg.Instructors {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		in := roster.NewInstructor(ic.FirstName, ic.LastName, m.idOrNew(ic.ID), ic.Department)
		summary.record(store.AddInstructor(in))
	}

	for _, sc := range cfg.Students {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		s := roster.NewStudent(sc.FirstName, sc.LastName, m.idOrNew(sc.ID), sc.Major)
		summary.record(store.AddStudent(s))
	}

	for _, cc := range cfg.Courses {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		in, ok := store.FindInstructor(cc.Instructor)
		if !ok {
			return summary, fmt.Errorf("course %s: %w: %s", cc.ID, ErrUnknownInstructor, cc.Instructor)
		}
		summary.record(store.AddCourse(roster.NewCourse(cc.Name, cc.ID, in)))
	}

	for _, ec := range cfg.Enrollments {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		s, ok := store.FindStudent(ec.Student)
		if !ok {
			return summary, fmt.Errorf("enrollment %s/%s: %w", ec.Student, ec.Course, ErrUnknownStudent)
		}
		c, ok := store.FindCourse(ec.Course)
		if !ok {
			return summary, fmt.Errorf("enrollment %s/%s: %w", ec.Student, ec.Course, ErrUnknownCourse)
		}

		e := roster.NewEnrollment(s, c)
		summary.record(store.Enroll(e))
		if ec.Grade != nil {
			summary.record(store.AssignGrade(e, *ec.Grade))
		}
		m.logger.Debug("Enrollment seeded", "enrollment", e.String())
	}

	return summary, nil
}

func (m *Manager) idOrNew(id string) string {
	if id != "" {
		return id
	}
	return m.newID()
}
