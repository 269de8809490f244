package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mizusawah/hatlink/internal/application/dto"
	"github.com/mizusawah/hatlink/internal/application/port/output"
	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/hatid"
	"github.com/mizusawah/hatlink/internal/domain/model/record"
)

// SearchHat validates a hat against the ownership graph and records it as
// the wizard's step 0 result. The ownership gate runs over the configured
// target entity's wearer list; failing it writes nothing.
func (u *UseCase) SearchHat(ctx context.Context, input dto.SearchHatInput) (*record.HatRecord, error) {
	if err := u.begin(actionSearchHat); err != nil {
		return nil, err
	}
	defer u.end(actionSearchHat)

	rec, err := u.searchHat(ctx, input)
	if err != nil {
		u.report(ctx, actionSearchHat, false, err.Error())
		return nil, err
	}
	u.report(ctx, actionSearchHat, true, fmt.Sprintf("Hat %s verified", rec.PrettyID))
	return rec, nil
}

func (u *UseCase) searchHat(ctx context.Context, input dto.SearchHatInput) (*record.HatRecord, error) {
	if u.identity.IsZero() {
		return nil, model.ErrNotConnected
	}
	if input.HatID == "" {
		return nil, fmt.Errorf("%w: please enter a valid hat ID", model.ErrInvalidInput)
	}
	id, err := hatid.FromDecimal(input.HatID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	hat, err := u.deps.Graph.GetHat(ctx, id, output.HatProps{
		Tree:     true,
		Details:  true,
		ImageURI: true,
		Wearers:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("query hat: %w", err)
	}
	if hat.TreeID == "" {
		return nil, errors.New("invalid tree")
	}

	domain, err := hatid.TreeDomainFromHex(hat.TreeID)
	if err != nil {
		return nil, err
	}
	topHatID := hatid.TopHat(domain)

	topHat, err := u.deps.Graph.GetHat(ctx, topHatID, output.HatProps{
		Details: true,
		Wearers: true,
	})
	if err != nil {
		return nil, fmt.Errorf("query top hat: %w", err)
	}

	if hat.Details == "" || topHat.Details == "" {
		return nil, errors.New("invalid hat details")
	}

	topDoc, err := u.deps.Documents.FetchJSON(ctx, topHat.Details)
	if err != nil {
		return nil, fmt.Errorf("fetch top hat details: %w", err)
	}
	subDoc, err := u.deps.Documents.FetchJSON(ctx, hat.Details)
	if err != nil {
		return nil, fmt.Errorf("fetch hat details: %w", err)
	}

	if err := u.deps.Gate.Verify(u.identity, hat.Wearers, topHat.Wearers); err != nil {
		return nil, err
	}

	topDocJSON, err := json.Marshal(topDoc)
	if err != nil {
		return nil, fmt.Errorf("encode top hat details: %w", err)
	}

	var imageURL string
	if hat.ImageURI != "" {
		imageURL = u.deps.Documents.ResolveURL(hat.ImageURI)
	}

	subName, subDesc := documentNameAndDescription(subDoc)
	topName, topDesc := documentNameAndDescription(topDoc)

	rec := &record.HatRecord{
		DecimalID:         id.String(),
		PrettyID:          hatid.ToPretty(id),
		Name:              subName,
		Description:       subDesc,
		ImageURL:          imageURL,
		Wearers:           hat.Wearers,
		TopHatDecimalID:   topHatID.String(),
		TopHatName:        topName,
		TopHatDescription: topDesc,
		TopHatDocument:    string(topDocJSON),
	}

	// persist before exposing: navigation must never see an undurable record
	if err := u.deps.Snapshots.Save(ctx, u.identity, model.StepKindHat, rec); err != nil {
		return nil, fmt.Errorf("persist hat record: %w", err)
	}

	u.mu.Lock()
	u.wizard.SetHat(rec)
	u.mu.Unlock()
	return rec, nil
}

// documentNameAndDescription pulls the display fields out of a metadata
// document of shape {"type": ..., "data": {"name": ..., "description": ...}}
func documentNameAndDescription(doc map[string]any) (string, string) {
	data, ok := doc["data"].(map[string]any)
	if !ok {
		return "", ""
	}
	name, _ := data["name"].(string)
	description, _ := data["description"].(string)
	return name, description
}
