package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/catalog"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/console"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/prompt"
)

// State is one section of the wizard.
type State int

const (
	StateBuilder State = iota
	StateReviewer
	StateArchitect
	StateEscalation
	StateLoop
	StateSummary
)

func (s State) String() string {
	switch s {
	case StateBuilder:
		return "builder"
	case StateReviewer:
		return "reviewer"
	case StateArchitect:
		return "architect"
	case StateEscalation:
		return "escalation"
	case StateLoop:
		return "loop"
	case StateSummary:
		return "summary"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Questions that are not per role.
const (
	QuestionEnableReviewer   = "Enable reviewer? (evaluates builder's work each iteration)"
	QuestionEnableArchitect  = "Enable architect? (third model with full context for final review)"
	QuestionEnableEscalation = "Enable escalation? (promote roles if builder fails repeatedly)"
	QuestionMaxFailures      = "Max builder failures before escalation"
	QuestionMaxIterations    = "Max iterations per run (0 = infinite)"
	QuestionCompletion       = "Enable completion detection? (builder signals via .project/state/completion.txt)"
)

// Per-role questions, formatted with the role title ("Builder", ...).
const (
	questionBackend = "%s backend:"
	questionAuth    = "%s auth mode:"
	questionModel   = "%s model (leave empty for default)"
	questionAPIKey  = "%s API key"
	questionBaseURL = "%s GLM API base URL"
)

// RoleQuestion returns the question asked for one field of a role, e.g.
// RoleQuestion("Builder", "backend") == "Builder backend:".
func RoleQuestion(role, field string) string {
	switch field {
	case "backend":
		return fmt.Sprintf(questionBackend, role)
	case "auth":
		return fmt.Sprintf(questionAuth, role)
	case "model":
		return fmt.Sprintf(questionModel, role)
	case "api_key":
		return fmt.Sprintf(questionAPIKey, role)
	case "api_base_url":
		return fmt.Sprintf(questionBaseURL, role)
	}
	return role + " " + field
}

type stepFn func(r *Resolver) (State, error)

var steps = map[State]stepFn{
	StateBuilder:    (*Resolver).builder,
	StateReviewer:   (*Resolver).reviewer,
	StateArchitect:  (*Resolver).architect,
	StateEscalation: (*Resolver).escalation,
	StateLoop:       (*Resolver).loop,
}

// Resolver walks the configuration sections in order, asking each question
// through a Prompter and filling a config that starts as a copy of the
// prior one. Sections that are not visited keep their prior values.
type Resolver struct {
	p     prompt.Prompter
	out   *console.Printer
	prior project.Config
	fresh bool

	cfg     project.Config
	visited []State
}

// NewResolver returns a Resolver seeded from prior. A nil prior means the
// project has no saved configuration and documented defaults apply.
func NewResolver(p prompt.Prompter, prior *project.Config, out *console.Printer) *Resolver {
	r := &Resolver{p: p, out: out}
	if prior == nil {
		r.prior = project.Default("")
		r.fresh = true
	} else {
		r.prior = *prior
	}
	return r
}

// Resolve asks every reachable section and returns the merged config.
// Any prompt error, including prompt.ErrAborted, stops resolution and is
// returned as is.
func (r *Resolver) Resolve() (project.Config, error) {
	r.cfg = r.prior
	r.visited = r.visited[:0]

	s := StateBuilder
	for s != StateSummary {
		r.visited = append(r.visited, s)
		next, err := steps[s](r)
		if err != nil {
			return project.Config{}, err
		}
		s = next
	}
	r.visited = append(r.visited, StateSummary)
	return r.cfg, nil
}

// Visited returns the states entered by the last Resolve, in order.
func (r *Resolver) Visited() []State {
	out := make([]State, len(r.visited))
	copy(out, r.visited)
	return out
}

func (r *Resolver) section(title, hint string) {
	if hint != "" {
		title += " (" + hint + ")"
	}
	r.out.Section(title)
	r.out.Dim("%s", strings.Repeat("─", 50))
}

func (r *Resolver) builder() (State, error) {
	r.section("BUILDER", "does the work")
	role, err := r.role("Builder", r.prior.Builder, catalog.Backends(), r.prior.Builder.Backend)
	if err != nil {
		return 0, err
	}
	role.SessionMode = project.SessionFresh
	r.cfg.Builder = role
	return StateReviewer, nil
}

func (r *Resolver) reviewer() (State, error) {
	r.section("REVIEWER", "pass/fail gate")
	prior := r.prior.Reviewer
	enabled, err := r.p.Confirm(QuestionEnableReviewer, prior.Enabled)
	if err != nil {
		return 0, err
	}
	if !enabled {
		r.cfg.Reviewer = prior
		r.cfg.Reviewer.Enabled = false
		r.cfg.Architect = r.prior.Architect
		r.cfg.Escalation = r.prior.Escalation
		return StateLoop, nil
	}

	def := prior.Backend
	if r.fresh || def == "" {
		def = catalog.SameAsBuilder
	}
	role, err := r.role("Reviewer", prior.Role, catalog.ReviewerBackends(), def)
	if err != nil {
		return 0, err
	}
	role.SessionMode = project.SessionFresh
	r.cfg.Reviewer = project.Tier{Enabled: true, Role: role}
	return StateArchitect, nil
}

func (r *Resolver) architect() (State, error) {
	r.section("ARCHITECT", "final approval, big-picture")
	prior := r.prior.Architect
	enabled, err := r.p.Confirm(QuestionEnableArchitect, prior.Enabled)
	if err != nil {
		return 0, err
	}
	if !enabled {
		r.cfg.Architect = prior
		r.cfg.Architect.Enabled = false
		return StateEscalation, nil
	}

	def := prior.Backend
	if def == "" {
		def = catalog.DefaultArchitectBackend
	}
	role, err := r.role("Architect", prior.Role, catalog.ArchitectBackends(), def)
	if err != nil {
		return 0, err
	}
	role.SessionMode = project.SessionResume
	r.out.Dim("Note: Architect uses session_mode=resume for full context across iterations")
	r.cfg.Architect = project.Tier{Enabled: true, Role: role}
	return StateEscalation, nil
}

func (r *Resolver) escalation() (State, error) {
	r.section("ESCALATION", "role promotion on failures")
	prior := r.prior.Escalation
	enabled, err := r.p.Confirm(QuestionEnableEscalation, prior.Enabled)
	if err != nil {
		return 0, err
	}
	if !enabled {
		r.cfg.Escalation = prior
		r.cfg.Escalation.Enabled = false
		return StateLoop, nil
	}

	answer, err := r.p.Text(QuestionMaxFailures, strconv.Itoa(prior.MaxBuilderFailures))
	if err != nil {
		return 0, err
	}
	failures := parseCount(answer, 1, project.DefaultMaxBuilderFailures)
	r.out.Dim("When builder fails %dx: Reviewer→Builder, Architect→Reviewer", failures)
	r.cfg.Escalation = project.Escalation{Enabled: true, MaxBuilderFailures: failures}
	return StateLoop, nil
}

func (r *Resolver) loop() (State, error) {
	r.section("LOOP SETTINGS", "")
	answer, err := r.p.Text(QuestionMaxIterations, strconv.Itoa(r.prior.MaxIterations))
	if err != nil {
		return 0, err
	}
	r.cfg.MaxIterations = parseCount(answer, 0, project.DefaultMaxIterations)

	completion, err := r.p.Confirm(QuestionCompletion, r.prior.CompletionEnabled)
	if err != nil {
		return 0, err
	}
	r.cfg.CompletionEnabled = completion
	return StateSummary, nil
}

// role asks backend, auth mode, model and, depending on the auth mode, the
// API key or proxy base URL for one role.
func (r *Resolver) role(title string, prior project.Role, backends []catalog.Choice, defBackend string) (project.Role, error) {
	label, err := r.p.Select(RoleQuestion(title, "backend"), backends, defBackend)
	if err != nil {
		return project.Role{}, err
	}
	backend := catalog.ValueOf(backends, label)
	if catalog.IsSameAsBuilder(backend) {
		backend = r.cfg.Builder.Backend
	}

	modes := catalog.AuthModes(backend)
	label, err = r.p.Select(RoleQuestion(title, "auth"), modes, prior.AuthMode)
	if err != nil {
		return project.Role{}, err
	}
	auth := catalog.ValueOf(modes, label)

	model, err := r.p.Text(RoleQuestion(title, "model"), prior.ModelName())
	if err != nil {
		return project.Role{}, err
	}

	role := project.Role{
		Backend:  backend,
		AuthMode: auth,
		Model:    project.Optional(model),
	}

	if catalog.IsKeyAuth(auth) {
		key, err := r.p.Password(RoleQuestion(title, "api_key"))
		if err != nil {
			return project.Role{}, err
		}
		key = strings.TrimSpace(key)
		if key == "" && prior.AuthMode == auth {
			key = prior.APIKey
		}
		role.APIKey = key
	}

	if catalog.IsProxyAuth(auth) {
		def := prior.APIBaseURL
		if def == "" {
			def = catalog.DefaultProxyBaseURL
		}
		url, err := r.p.Text(RoleQuestion(title, "api_base_url"), def)
		if err != nil {
			return project.Role{}, err
		}
		role.APIBaseURL = strings.TrimSpace(url)
	}

	r.out.Debug("%s: backend=%s auth=%s", strings.ToLower(title), backend, auth)
	return role, nil
}

// parseCount reads a non-negative count. Anything that is not an integer of
// at least min yields fallback.
func parseCount(s string, min, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < min {
		return fallback
	}
	return n
}
