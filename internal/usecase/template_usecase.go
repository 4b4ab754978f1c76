package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m-bikko/kulsary-vent/internal/domain/entities"
	"github.com/m-bikko/kulsary-vent/internal/domain/formula"
	"github.com/m-bikko/kulsary-vent/internal/usecase/interfaces"
)

var (
	ErrTemplateNotFound = errors.New("product template not found")
	ErrInvalidTemplate  = errors.New("invalid product template")
	ErrInvalidFormula   = errors.New("invalid formula")
)

// Slugs become formula variable names, so they must lex as identifiers.
var slugPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// The admin test bench injects this price when a formula mentions
// MaterialPrice but the admin gave no value, so the bench always shows a
// realistic number instead of 0.
const testBenchMaterialPrice = 1000

// ITemplateUseCase exposes the parametric product catalog.
//
// Saving a template with an unparseable formula, or one referencing
// anything beyond the declared slugs and the reserved names, is a blocking
// validation failure: it is rejected, never stored as a 0-pricing product.

type ITemplateUseCase interface {
	Create(ctx context.Context, t entities.ProductTemplate) (entities.ProductTemplate, error)
	GetByID(ctx context.Context, id string) (entities.ProductTemplate, error)
	List(ctx context.Context) ([]entities.ProductTemplate, error)
	Update(ctx context.Context, t entities.ProductTemplate) (entities.ProductTemplate, error)
	Delete(ctx context.Context, id string) error
	TestFormula(formulaStr string, values map[string]float64) (price float64, errMsg string)
}

type TemplateUseCase struct {
	repo interfaces.ITemplateRepository
}

var _ ITemplateUseCase = (*TemplateUseCase)(nil)

func NewTemplateUseCase(repo interfaces.ITemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

func (u *TemplateUseCase) Create(ctx context.Context, t entities.ProductTemplate) (entities.ProductTemplate, error) {
	if err := validateTemplate(&t); err != nil {
		return entities.ProductTemplate{}, err
	}

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, t)
}

func (u *TemplateUseCase) GetByID(ctx context.Context, id string) (entities.ProductTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProductTemplate{}, ErrInvalidTemplate
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProductTemplate{}, err
	}
	if t.ID == "" {
		return entities.ProductTemplate{}, ErrTemplateNotFound
	}
	return t, nil
}

func (u *TemplateUseCase) List(ctx context.Context) ([]entities.ProductTemplate, error) {
	return u.repo.List(ctx)
}

func (u *TemplateUseCase) Update(ctx context.Context, t entities.ProductTemplate) (entities.ProductTemplate, error) {
	existing, err := u.GetByID(ctx, t.ID)
	if err != nil {
		return entities.ProductTemplate{}, err
	}
	if err := validateTemplate(&t); err != nil {
		return entities.ProductTemplate{}, err
	}

	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	return u.repo.Update(ctx, t)
}

func (u *TemplateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTemplate
	}

	// No cascade: project items keep the dangling template id and price as
	// 0 until corrected. The reconciliation report surfaces them.
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTemplateNotFound
	}
	return nil
}

// TestFormula runs the admin formula bench with preview semantics: never an
// error, always a number (possibly 0) plus an optional message.
func (u *TemplateUseCase) TestFormula(formulaStr string, values map[string]float64) (float64, string) {
	scope := make(map[string]float64, len(values)+2)
	for k, v := range values {
		scope[k] = v
	}
	if _, ok := scope[formula.MaterialPriceVar]; !ok && formula.References(formulaStr, formula.MaterialPriceVar) {
		scope[formula.MaterialPriceVar] = testBenchMaterialPrice
	}
	scope["PI"] = formula.PI
	return formula.Preview(formulaStr, scope)
}

func validateTemplate(t *entities.ProductTemplate) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Formula = strings.TrimSpace(t.Formula)
	if t.Name == "" {
		return ErrInvalidTemplate
	}

	seen := make(map[string]bool, len(t.Parameters))
	for i := range t.Parameters {
		p := &t.Parameters[i]
		p.Slug = strings.TrimSpace(p.Slug)
		if p.Type == "" {
			p.Type = entities.ParameterTypeNumber
		}
		if !slugPattern.MatchString(p.Slug) {
			return fmt.Errorf("%w: parameter slug %q is not a valid identifier", ErrInvalidTemplate, p.Slug)
		}
		if p.Slug == formula.MaterialPriceVar || p.Slug == "PI" {
			return fmt.Errorf("%w: parameter slug %q shadows a reserved name", ErrInvalidTemplate, p.Slug)
		}
		if seen[p.Slug] {
			return fmt.Errorf("%w: duplicate parameter slug %q", ErrInvalidTemplate, p.Slug)
		}
		seen[p.Slug] = true
	}

	if err := formula.Validate(t.Formula, t.ParameterSlugs()); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFormula, err.Error())
	}
	return nil
}
