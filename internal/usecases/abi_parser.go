package usecases

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/pkg/logger"
	"saas-admin.backend/pkg/utils"
)

// ABI fragment types that produce records
const (
	abiTypeFunction = "function"
	abiTypeEvent    = "event"
)

// ParsedAbi holds the records upserted from one ABI
type ParsedAbi struct {
	Methods []*entities.Method
	Events  []*entities.EventDefinition
	// FacetEvents are classified but not stored
	FacetEvents []*entities.EventDefinition
}

// AbiParser turns an ABI array into Method and EventDefinition records
type AbiParser struct {
	artifactRepo repositories.ArtifactRepository
}

// NewAbiParser creates a new ABI parser
func NewAbiParser(artifactRepo repositories.ArtifactRepository) *AbiParser {
	return &AbiParser{artifactRepo: artifactRepo}
}

// Parse upserts one Method per function and one EventDefinition per event of raw.
// Records are named <Abi>.<fragment>. Constructors, errors, fallback and receive are ignored.
func (p *AbiParser) Parse(ctx context.Context, owner *entities.Abi, raw json.RawMessage) (*ParsedAbi, error) {
	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return nil, fmt.Errorf("abi %s is not an array: %w", owner.Name, domainerrors.ErrInvalidInput)
	}

	parsed := &ParsedAbi{}
	var upsertErr error

	doc.ForEach(func(_, fragment gjson.Result) bool {
		name := fragment.Get("name").String()
		if name == "" {
			return true
		}

		switch fragmentType(fragment) {
		case abiTypeFunction:
			method, err := p.artifactRepo.UpsertMethod(ctx, &entities.Method{
				AbiID:           owner.ID,
				Name:            owner.Name + "." + name,
				Code:            functionSelector(ctx, fragment),
				Inputs:          jsonOrEmptyList(fragment.Get("inputs")),
				Outputs:         jsonOrEmptyList(fragment.Get("outputs")),
				StateMutability: fragment.Get("stateMutability").String(),
				Data:            json.RawMessage(fragment.Raw),
			})
			if err != nil {
				upsertErr = fmt.Errorf("upsert method %s.%s: %w", owner.Name, name, err)
				return false
			}
			parsed.Methods = append(parsed.Methods, method)

		case abiTypeEvent:
			def := &entities.EventDefinition{
				AbiID:     owner.ID,
				Name:      owner.Name + "." + name,
				Code:      eventTopic(ctx, fragment),
				Inputs:    jsonOrEmptyList(fragment.Get("inputs")),
				Anonymous: fragment.Get("anonymous").Bool(),
				Data:      json.RawMessage(fragment.Raw),
			}
			if isFacetEvent(def) {
				parsed.FacetEvents = append(parsed.FacetEvents, def)
				return true
			}

			event, err := p.artifactRepo.UpsertEventDefinition(ctx, def)
			if err != nil {
				upsertErr = fmt.Errorf("upsert event %s.%s: %w", owner.Name, name, err)
				return false
			}
			parsed.Events = append(parsed.Events, event)
		}
		return true
	})

	if upsertErr != nil {
		return nil, upsertErr
	}
	return parsed, nil
}

// fragmentType defaults to function, as solc omits the type of plain functions in old ABIs
func fragmentType(fragment gjson.Result) string {
	t := fragment.Get("type")
	if !t.Exists() {
		return abiTypeFunction
	}
	return t.String()
}

// isFacetEvent is the hook for facet-specific event handling. No event is treated as one yet.
func isFacetEvent(*entities.EventDefinition) bool {
	return false
}

func functionSelector(ctx context.Context, fragment gjson.Result) string {
	parsed, err := parseFragment(fragment)
	if err != nil {
		logger.Debug(ctx, "Cannot encode ABI function", zap.String("fragment", fragment.Raw), zap.Error(err))
		return ""
	}
	for _, method := range parsed.Methods {
		return "0x" + hex.EncodeToString(method.ID)
	}
	return ""
}

func eventTopic(ctx context.Context, fragment gjson.Result) string {
	parsed, err := parseFragment(fragment)
	if err != nil {
		logger.Debug(ctx, "Cannot encode ABI event", zap.String("fragment", fragment.Raw), zap.Error(err))
		return ""
	}
	for _, event := range parsed.Events {
		return event.ID.Hex()
	}
	return ""
}

func parseFragment(fragment gjson.Result) (abi.ABI, error) {
	return abi.JSON(strings.NewReader("[" + utils.NormalizeABIFragment(fragment.Raw) + "]"))
}

func jsonOrEmptyList(r gjson.Result) json.RawMessage {
	if !r.Exists() || r.Type == gjson.Null {
		return json.RawMessage("[]")
	}
	return json.RawMessage(r.Raw)
}
