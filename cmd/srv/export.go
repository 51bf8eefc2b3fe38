package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/questx-lab/social/internal/entity"
	"github.com/questx-lab/social/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type exporter func(ctx context.Context, w io.Writer) error

var exporters = map[string]exporter{
	entity.User{}.TableName():     exportTable[entity.User],
	entity.Follower{}.TableName(): exportTable[entity.Follower],
	entity.Post{}.TableName():     exportTable[entity.Post],
	entity.Media{}.TableName():    exportTable[entity.Media],
	entity.Comment{}.TableName():  exportTable[entity.Comment],
}

func exportTables() []string {
	tables := make([]string, 0, len(exporters))
	for table := range exporters {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	return tables
}

func (s *srv) startExport(cctx *cli.Context) error {
	table := cctx.String("table")
	export, ok := exporters[table]
	if !ok {
		return fmt.Errorf("not found table %s", table)
	}

	return export(s.ctx, cctx.App.Writer)
}

// exportTable writes the serialized form of every record of T as one json
// object per line.
func exportTable[T entity.Serializer](ctx context.Context, w io.Writer) error {
	var records []T
	if err := xcontext.DB(ctx).Find(&records).Error; err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	for _, record := range records {
		if err := encoder.Encode(record.Serialize()); err != nil {
			return err
		}
	}

	xcontext.Logger(ctx).Debugf("Exported %d records", len(records))
	return nil
}
