package tracker

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/misterclayt0n/glowup/internal/gamification"
	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/storage"
	"github.com/misterclayt0n/glowup/internal/utils"
)

const (
	defaultName             = "User"
	defaultAge              = 30
	defaultHeight           = 170.0
	defaultWeight           = 70.0
	defaultMedicalCondition = "None"
	defaultGoal             = models.GoalGeneralFitness
)

// LoginFields are the optional values supplied at login. Zero values and
// blank strings count as not supplied and fall back to defaults.
type LoginFields struct {
	Name             string
	Age              int
	Height           float64
	Weight           float64
	MedicalCondition string
	FitnessGoal      models.FitnessGoal
	TargetWeight     float64
	Points           int
}

// DemoAccount is the fixed profile behind the "try the demo" login.
var DemoAccount = LoginFields{
	Name:             "Demo User",
	Age:              30,
	Height:           175,
	Weight:           75,
	MedicalCondition: "None",
	FitnessGoal:      models.GoalWeightLoss,
	TargetWeight:     70,
	Points:           50,
}

// ProfileUpdate carries every editable profile field. Points are not editable.
type ProfileUpdate struct {
	Name             string
	Age              int
	Height           float64
	Weight           float64
	MedicalCondition string
	FitnessGoal      models.FitnessGoal
	TargetWeight     float64
}

// profileRecord is the persisted form. Level is written for readers of the raw
// record and ignored on load.
type profileRecord struct {
	models.UserProfile
	Level gamification.Level `json:"level"`
}

// ProfileManager owns the user profile and the session flag.
type ProfileManager struct {
	store    storage.Store
	profile  *models.UserProfile
	loggedIn bool
}

// NewProfileManager loads the profile and session flag from store. Malformed
// records are logged and replaced by the empty state.
func NewProfileManager(store storage.Store) (*ProfileManager, error) {
	m := &ProfileManager{store: store}
	if err := m.reload(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ProfileManager) reload() error {
	raw, ok, err := m.store.Get(storage.KeyProfile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	m.profile = nil
	if ok {
		m.profile = decodeProfile(raw)
	}

	raw, ok, err = m.store.Get(storage.KeyLoggedIn)
	if err != nil {
		return fmt.Errorf("failed to load session flag: %w", err)
	}
	m.loggedIn = false
	if ok {
		v, perr := strconv.ParseBool(strings.TrimSpace(raw))
		if perr != nil {
			slog.Warn("discarding malformed record", "key", storage.KeyLoggedIn, "error", perr)
		}
		m.loggedIn = v
	}
	return nil
}

func decodeProfile(raw string) *models.UserProfile {
	var rec profileRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		slog.Warn("discarding malformed record", "key", storage.KeyProfile, "error", err)
		return nil
	}
	p := rec.UserProfile
	if p.Points < 0 {
		p.Points = 0
	}
	if !p.FitnessGoal.Valid() {
		p.FitnessGoal = defaultGoal
	}
	if err := validateProfile(p); err != nil {
		slog.Warn("discarding malformed record", "key", storage.KeyProfile, "error", err)
		return nil
	}
	if rec.Level != "" && rec.Level != p.Level() {
		slog.Debug("stored level disagrees with points, recomputing",
			"stored", rec.Level,
			"level", p.Level(),
			"points", p.Points,
		)
	}
	return &p
}

// Profile returns the stored profile, if any.
func (m *ProfileManager) Profile() (models.UserProfile, bool) {
	if m.profile == nil {
		return models.UserProfile{}, false
	}
	return *m.profile, true
}

func (m *ProfileManager) LoggedIn() bool {
	return m.loggedIn
}

// Login builds a complete profile from fields, overwrites the stored one and
// opens the session.
func (m *ProfileManager) Login(fields LoginFields) (models.UserProfile, error) {
	p := profileFromLogin(fields)
	if err := m.save(p); err != nil {
		return models.UserProfile{}, err
	}
	if err := m.setLoggedIn(true); err != nil {
		return p, err
	}
	slog.Info("logged in", "name", p.Name, "goal", p.FitnessGoal, "level", p.Level())
	return p, nil
}

// DemoLogin logs in with DemoAccount.
func (m *ProfileManager) DemoLogin() (models.UserProfile, error) {
	return m.Login(DemoAccount)
}

// Logout closes the session. The profile stays on disk.
func (m *ProfileManager) Logout() error {
	if err := m.setLoggedIn(false); err != nil {
		return err
	}
	slog.Info("logged out")
	return nil
}

// UpdateProfile replaces the editable fields after validating all of them.
func (m *ProfileManager) UpdateProfile(u ProfileUpdate) (models.UserProfile, error) {
	if m.profile == nil {
		return models.UserProfile{}, ErrNoProfile
	}
	if err := validateUpdate(u); err != nil {
		return models.UserProfile{}, err
	}

	p := *m.profile
	p.Name = strings.TrimSpace(u.Name)
	p.Age = u.Age
	p.Height = u.Height
	p.Weight = u.Weight
	p.MedicalCondition = u.MedicalCondition
	p.FitnessGoal = u.FitnessGoal
	p.TargetWeight = u.TargetWeight

	if err := m.save(p); err != nil {
		return models.UserProfile{}, err
	}
	return p, nil
}

// AwardPoints adds delta to the profile's points. The level follows from the
// new total.
func (m *ProfileManager) AwardPoints(delta int) (models.UserProfile, error) {
	if delta <= 0 {
		return models.UserProfile{}, invalid("points", "award must be a positive number")
	}
	if m.profile == nil {
		return models.UserProfile{}, ErrNoProfile
	}

	p := *m.profile
	before := p.Level()
	p.Points += delta
	if err := m.save(p); err != nil {
		return models.UserProfile{}, err
	}

	if after := p.Level(); after != before {
		slog.Info("level up", "from", before, "to", after, "points", p.Points)
	}
	return p, nil
}

func (m *ProfileManager) save(p models.UserProfile) error {
	data, err := json.Marshal(profileRecord{UserProfile: p, Level: p.Level()})
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := m.store.Set(storage.KeyProfile, string(data)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	m.profile = &p
	return nil
}

func (m *ProfileManager) setLoggedIn(v bool) error {
	if err := m.store.Set(storage.KeyLoggedIn, strconv.FormatBool(v)); err != nil {
		return fmt.Errorf("failed to save session flag: %w", err)
	}
	m.loggedIn = v
	return nil
}

func profileFromLogin(f LoginFields) models.UserProfile {
	p := models.UserProfile{
		Name:             defaultName,
		Age:              defaultAge,
		Height:           defaultHeight,
		Weight:           defaultWeight,
		MedicalCondition: defaultMedicalCondition,
		FitnessGoal:      defaultGoal,
		TargetWeight:     defaultWeight,
	}

	if name := strings.TrimSpace(f.Name); name != "" {
		p.Name = name
	}
	if f.Age > 0 {
		p.Age = f.Age
	}
	if utils.IsPositive(f.Height) {
		p.Height = f.Height
	}
	if utils.IsPositive(f.Weight) {
		p.Weight = f.Weight
		p.TargetWeight = f.Weight
	}
	if f.MedicalCondition != "" {
		p.MedicalCondition = f.MedicalCondition
	}
	if f.FitnessGoal.Valid() {
		p.FitnessGoal = f.FitnessGoal
	}
	if utils.IsPositive(f.TargetWeight) {
		p.TargetWeight = f.TargetWeight
	}
	if f.Points > 0 {
		p.Points = f.Points
	}
	return p
}

func validateUpdate(u ProfileUpdate) error {
	if strings.TrimSpace(u.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if u.Age <= 0 {
		return invalid("age", "must be a positive number")
	}
	if !utils.IsPositive(u.Height) {
		return invalid("height", "must be a positive number")
	}
	if !utils.IsPositive(u.Weight) {
		return invalid("weight", "must be a positive number")
	}
	if !utils.IsPositive(u.TargetWeight) {
		return invalid("targetWeight", "must be a positive number")
	}
	if !u.FitnessGoal.Valid() {
		return invalid("fitnessGoal", fmt.Sprintf("unknown goal %q", u.FitnessGoal))
	}
	return nil
}

// validateProfile checks a complete profile, as restored from a snapshot.
func validateProfile(p models.UserProfile) error {
	if err := validateUpdate(ProfileUpdate{
		Name:         p.Name,
		Age:          p.Age,
		Height:       p.Height,
		Weight:       p.Weight,
		FitnessGoal:  p.FitnessGoal,
		TargetWeight: p.TargetWeight,
	}); err != nil {
		return err
	}
	if p.Points < 0 {
		return invalid("points", "must not be negative")
	}
	return nil
}
