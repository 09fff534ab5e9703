// Package service содержит бизнес-логику экспорта данных мероприятия и дашборда.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"event-management-service/internal/archive"
	"event-management-service/internal/config"
	"event-management-service/internal/model"
	"event-management-service/internal/spreadsheet"
)

// ErrorsFileName задаёт имя файла со списком сбоев при политике note.
const ErrorsFileName = "errors.txt"

// Archiver собирает артефакты в архив и финализирует его.
type Archiver interface {
	Append(name string, content []byte) error
	Close() error
	Len() int
}

// OpenFunc вызывается один раз, когда артефакты готовы и можно начинать отдачу.
// Возвращает writer, в который пишется архив.
type OpenFunc func(filename string) io.Writer

// ExportService собирает выбранные категории мероприятия в zip-архив из xlsx-файлов.
type ExportService struct {
	sources     map[model.ExportItemID]DataSource
	policy      config.FailurePolicy
	maxParallel int
	loc         *time.Location
	log         *slog.Logger

	now        func() time.Time
	newArchive func(w io.Writer, modTime time.Time) Archiver
}

// NewExportService создаёт сервис экспорта. Даты и время в книгах выводятся в зоне loc,
// nil оставляет их как есть.
func NewExportService(
	sources map[model.ExportItemID]DataSource,
	policy config.FailurePolicy,
	maxParallel int,
	loc *time.Location,
	log *slog.Logger,
) *ExportService {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &ExportService{
		sources:     sources,
		policy:      policy,
		maxParallel: maxParallel,
		loc:         loc,
		log:         log,
		now:         time.Now,
		newArchive: func(w io.Writer, modTime time.Time) Archiver {
			return archive.NewZipStream(w, modTime)
		},
	}
}

// Items возвращает список категорий, доступных для экспорта.
func (s *ExportService) Items() []model.ExportItemInfo {
	items := make([]model.ExportItemInfo, 0, len(model.KnownExportItems))
	for _, id := range model.KnownExportItems {
		schema, ok := spreadsheet.SchemaFor(id)
		if !ok {
			continue
		}
		if _, ok := s.sources[id]; !ok {
			continue
		}
		items = append(items, model.ExportItemInfo{ID: schema.Item, Title: schema.Title, File: schema.File})
	}
	return items
}

// SelectItems оставляет только известные токены, убирает повторы и сохраняет
// порядок первых вхождений.
func SelectItems(raw []string) ([]model.ExportItemID, error) {
	if len(raw) == 0 {
		return nil, ErrBadRequest(MsgNoItemsSelected)
	}

	seen := make(map[model.ExportItemID]struct{}, len(raw))
	items := make([]model.ExportItemID, 0, len(raw))
	for _, token := range raw {
		id, ok := model.ParseExportItemID(token)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		items = append(items, id)
	}

	if len(items) == 0 {
		return nil, ErrBadRequest(MsgNoValidItems)
	}
	return items, nil
}

type itemResult struct {
	item     model.ExportItemID
	artifact model.Artifact
	err      error
}

// ExportSelected собирает архив по запросу и пишет его в writer, полученный от open.
// До вызова open возвращается *AppError, и ответ ещё можно отдать клиенту,
// после него только *StreamError.
func (s *ExportService) ExportSelected(ctx context.Context, req model.ExportRequest, open OpenFunc) error {
	if strings.TrimSpace(req.EventID) == "" {
		return ErrBadRequest(MsgEventIDRequired)
	}

	items, err := SelectItems(req.ItemIDs)
	if err != nil {
		return err
	}

	results, err := s.collect(ctx, req.EventID, items)
	if err != nil {
		return err
	}

	artifacts := make([]model.Artifact, 0, len(results)+1)
	var failures []string
	for _, res := range results {
		if res.err != nil {
			s.log.Warn("export item failed",
				slog.String("event_id", req.EventID),
				slog.String("item", string(res.item)),
				slog.Any("err", res.err),
			)
			failures = append(failures, fmt.Sprintf("%s: %v", res.item, res.err))
			continue
		}
		artifacts = append(artifacts, res.artifact)
	}
	if len(failures) > 0 && s.policy == config.FailureNote {
		artifacts = append(artifacts, model.Artifact{
			Name:    ErrorsFileName,
			Content: []byte(strings.Join(failures, "\n") + "\n"),
		})
	}

	if err := ctx.Err(); err != nil {
		return &StreamError{Err: err}
	}

	return s.stream(ctx, req.EventID, open(ArchiveFileName(req.EventID)), artifacts)
}

// collect параллельно читает данные и строит книги. Результаты лежат в порядке items,
// независимо от того, в каком порядке завершились выборки.
func (s *ExportService) collect(ctx context.Context, eventID string, items []model.ExportItemID) ([]itemResult, error) {
	results := make([]itemResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)

	for i, item := range items {
		g.Go(func() error {
			results[i].item = item
			artifact, err := s.buildItem(gctx, eventID, item)
			if err != nil {
				if s.policy == config.FailureAbort {
					return fmt.Errorf("%s: %w", item, err)
				}
				results[i].err = err
				return nil
			}
			results[i].artifact = artifact
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, ErrInternal("failed to collect export data", err)
	}
	return results, nil
}

func (s *ExportService) buildItem(ctx context.Context, eventID string, item model.ExportItemID) (model.Artifact, error) {
	source, ok := s.sources[item]
	if !ok {
		return model.Artifact{}, fmt.Errorf("no data source for %s", item)
	}
	schema, ok := spreadsheet.SchemaFor(item)
	if !ok {
		return model.Artifact{}, fmt.Errorf("no sheet schema for %s", item)
	}

	records, err := source.Fetch(ctx, eventID)
	if err != nil {
		return model.Artifact{}, fmt.Errorf("fetch: %w", err)
	}

	content, err := spreadsheet.Build(schema, records, s.loc)
	if err != nil {
		return model.Artifact{}, fmt.Errorf("build sheet: %w", err)
	}
	return model.Artifact{Name: schema.File, Content: content}, nil
}

// stream пишет артефакты в архив в заданном порядке и финализирует его один раз.
// При отмене контекста или ошибке записи архив не финализируется.
func (s *ExportService) stream(ctx context.Context, eventID string, w io.Writer, artifacts []model.Artifact) error {
	arc := s.newArchive(w, s.now())
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return &StreamError{Err: err}
		}
		if err := arc.Append(a.Name, a.Content); err != nil {
			return &StreamError{Err: err}
		}
	}
	if err := arc.Close(); err != nil {
		return &StreamError{Err: err}
	}

	s.log.Info("export streamed",
		slog.String("event_id", eventID),
		slog.Int("entries", arc.Len()),
	)
	return nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ArchiveFileName строит имя архива из идентификатора мероприятия.
func ArchiveFileName(eventID string) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(eventID, "_"), "_")
	if name == "" {
		name = "event"
	}
	return name + "-export.zip"
}
