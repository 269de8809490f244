package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mizusawah/hatlink/internal/app"
	"github.com/mizusawah/hatlink/internal/application/port/output"
	"github.com/mizusawah/hatlink/internal/domain/model"
	"github.com/mizusawah/hatlink/internal/domain/model/hatid"
	"github.com/mizusawah/hatlink/internal/domain/model/record"
)

// LinkGuildMetadata appends the guild reference to the top hat's metadata
// document: fetch the cached copy, reject if the reference already exists,
// otherwise append, publish the new document, point the top hat at it
// on-chain, and overwrite the cached copy. The read-modify-write is not
// protected against a concurrent session appending at the same time; both
// can observe "absent" and produce a duplicate. Known limitation.
func (u *UseCase) LinkGuildMetadata(ctx context.Context) (*record.HatRecord, error) {
	if err := u.begin(actionLinkMetadata); err != nil {
		return nil, err
	}
	defer u.end(actionLinkMetadata)

	rec, err := u.linkGuildMetadata(ctx)
	if err != nil {
		u.report(ctx, actionLinkMetadata, false, err.Error())
		return nil, err
	}
	u.report(ctx, actionLinkMetadata, true, "Guild has been added to top hat!")
	return rec, nil
}

func (u *UseCase) linkGuildMetadata(ctx context.Context) (*record.HatRecord, error) {
	if u.identity.IsZero() {
		return nil, model.ErrNotConnected
	}

	u.mu.Lock()
	hat := u.wizard.Hat()
	guild := u.wizard.Guild()
	u.mu.Unlock()
	if hat == nil {
		return nil, fmt.Errorf("%w: please select a hat first", model.ErrMissingPrerequisite)
	}
	if guild == nil {
		return nil, fmt.Errorf("%w: please create a guild first", model.ErrMissingPrerequisite)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(hat.TopHatDocument), &doc); err != nil {
		return nil, fmt.Errorf("parse top hat details: %w", err)
	}
	data, ok := doc["data"].(map[string]any)
	if !ok {
		return nil, errors.New("malformed top hat details")
	}

	var guilds []any
	if existing, ok := data["guilds"].([]any); ok {
		guilds = existing
	}
	for _, g := range guilds {
		if s, ok := g.(string); ok && s == guild.URLName {
			return nil, model.ErrAlreadyLinked
		}
	}
	data["guilds"] = append(guilds, guild.URLName)

	cid, err := u.deps.Pinner.Upload(ctx, "hatDetails.json", doc)
	if err != nil {
		return nil, fmt.Errorf("upload top hat details: %w", err)
	}

	u.archiveDocument(ctx, cid, doc)

	topHatID, err := hatid.FromDecimal(hat.TopHatDecimalID)
	if err != nil {
		return nil, fmt.Errorf("invalid top hat ID: %w", err)
	}
	if err := u.deps.Chain.ChangeHatDetails(ctx, topHatID, "ipfs://"+cid); err != nil {
		return nil, fmt.Errorf("update top hat details: %w", err)
	}

	newDoc, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode top hat details: %w", err)
	}

	updated := *hat
	updated.TopHatDocument = string(newDoc)

	if err := u.deps.Snapshots.Save(ctx, u.identity, model.StepKindHat, &updated); err != nil {
		return nil, fmt.Errorf("persist hat record: %w", err)
	}

	u.mu.Lock()
	u.wizard.SetHat(&updated)
	u.mu.Unlock()
	return &updated, nil
}

// archiveDocument keeps a best-effort copy of the published document;
// archive failures never fail the step.
func (u *UseCase) archiveDocument(ctx context.Context, cid string, doc map[string]any) {
	if u.deps.Archive == nil {
		return
	}
	content, err := json.Marshal(doc)
	if err != nil {
		app.GetLogger().Warn("encode archive document: %v", err)
		return
	}
	_, err = u.deps.Archive.ArchiveDocument(ctx, output.ArchiveRequest{
		Identity: u.identity.String(),
		CID:      cid,
		Content:  content,
		Metadata: map[string]string{"name": "hatDetails.json"},
	})
	if err != nil {
		app.GetLogger().Warn("archive document %s: %v", cid, err)
	}
}
