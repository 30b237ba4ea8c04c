package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	uuid "github.com/satori/go.uuid"

	"github.com/pivolan/chart_series/config"
	"github.com/pivolan/chart_series/dataset"
	"github.com/pivolan/chart_series/model"
	"github.com/pivolan/chart_series/render"
	"github.com/pivolan/chart_series/series"
	"github.com/pivolan/chart_series/store"
)

func main() {
	fmt.Println("started")
	cfg := config.GetConfig()

	if len(os.Args) < 2 {
		log.Fatalln("usage: chart_series <data.csv[.gz|.lz4|.zip]>")
	}

	dataPath, err := dataset.UnpackArchive(os.Args[1])
	if err != nil {
		log.Fatalln("cannot unpack archive", err)
	}

	table, err := dataset.LoadCSV(dataPath)
	if err != nil {
		log.Fatalln("cannot load csv", err)
	}

	title := strings.TrimSuffix(filepath.Base(dataPath), filepath.Ext(dataPath))
	m, err := buildModel(table, title)
	if err != nil {
		log.Fatalln("cannot build chart", err)
	}

	m.Update()
	m.ApplyDefaults()

	png, err := renderPNG(m)
	if err != nil {
		log.Fatalln("cannot render chart", err)
	}

	baseName := fmt.Sprintf("%s_%s", dataset.Slug(m.Title), uuid.NewV4())
	pngPath := filepath.Join(cfg.OutDir, baseName+".png")
	if err := os.WriteFile(pngPath, png, 0644); err != nil {
		log.Fatalln("cannot write png", err)
	}
	fmt.Println("png:", pngPath)

	htmlPath := filepath.Join(cfg.OutDir, baseName+".html")
	if err := exportHTML(m, htmlPath); err != nil {
		log.Println("cannot export html:", err)
	} else {
		fmt.Println("html:", htmlPath)
	}

	fmt.Println(GenerateSeriesTable(m))

	if cfg.DbDsn != "" {
		db, err := store.Open(cfg.DbDsn)
		if err != nil {
			log.Println("snapshot store unavailable:", err)
		} else if id, err := store.SaveSnapshot(db, m, png); err != nil {
			log.Println("cannot save snapshot:", err)
		} else {
			fmt.Println("snapshot:", id)
		}
	}

	if cfg.TgToken != "" && cfg.TgChatID != "" {
		chatID, err := strconv.ParseInt(cfg.TgChatID, 10, 64)
		if err != nil {
			log.Println("bad TG_CHAT_ID:", err)
			return
		}
		sendChart(cfg.TgToken, chatID, filepath.Base(pngPath), m.Title, png)
	}
}

// buildModel строит график из таблицы: первая числовая колонка идет по X,
// остальные становятся линиями. Одна числовая колонка рисуется по индексу
// строки.
func buildModel(table *dataset.Table, title string) (*model.Model, error) {
	numeric := table.NumericColumns()
	if len(numeric) == 0 {
		return nil, fmt.Errorf("no numeric columns in table")
	}

	var xValues []float64
	yColumns := numeric
	if len(numeric) > 1 {
		xValues, _ = table.FloatColumn(numeric[0])
		yColumns = numeric[1:]
	}

	m := model.New(title)
	for _, column := range yColumns {
		yValues, _ := table.FloatColumn(column)
		x := xValues
		if x == nil {
			x = make([]float64, len(yValues))
			for i := range x {
				x[i] = float64(i)
			}
		}
		s := series.NewLineSeries(column, x, yValues)
		s.TrackerFormat = "{title}: x={x} y={y}"
		m.AddSeries(s)
	}
	return m, nil
}

func renderPNG(m *model.Model) ([]byte, error) {
	ctx, err := render.NewPNGContext(m.Width, m.Height)
	if err != nil {
		return nil, err
	}
	m.Render(ctx)
	buffer := bytes.NewBuffer([]byte{})
	if err := ctx.Save(buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

func exportHTML(m *model.Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.ExportHTML(m, f)
}
