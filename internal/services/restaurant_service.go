package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
)

// Restaurant CSVの1行 (正規化した列名をキーとする)
// 値は列ごとに int64 / float64 / string のいずれか、空欄は nil
type Restaurant map[string]any

// text 列の値を文字列として取得
func (r Restaurant) text(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// columnKind 列の値の型
type columnKind int

const (
	kindInt columnKind = iota
	kindFloat
	kindString
)

// RestaurantQuery 検索条件
type RestaurantQuery struct {
	Q      string
	City   string
	Limit  int
	Offset int
}

// RestaurantService レストランデータの検索サービスインターフェース
type RestaurantService interface {
	Search(query RestaurantQuery) ([]Restaurant, int, error)
}

// restaurantService RestaurantServiceの実装
type restaurantService struct {
	rows []Restaurant
}

// NewRestaurantService CSVを読み込んで RestaurantService を作成
// ファイルがない場合は空のデータセットとして扱う
func NewRestaurantService(path string) (RestaurantService, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("レストランデータが見つかりません: %s", path)
			return &restaurantService{}, nil
		}
		return nil, fmt.Errorf("レストランデータを開けませんでした: %w", err)
	}
	defer f.Close()

	rows, err := readRestaurants(f)
	if err != nil {
		return nil, err
	}
	log.Printf("レストランデータを読み込みました: %d件", len(rows))
	return &restaurantService{rows: rows}, nil
}

// readRestaurants ヘッダー付きCSVを読み込む
func readRestaurants(r io.Reader) ([]Restaurant, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("CSVヘッダーの読み込みに失敗しました: %w", err)
	}
	for i, h := range header {
		header[i] = normalizeColumn(h)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSVの読み込みに失敗しました: %w", err)
		}
		records = append(records, record)
	}

	kinds := make([]columnKind, len(header))
	for i := range header {
		kinds[i] = inferColumn(records, i)
	}

	rows := make([]Restaurant, 0, len(records))
	for _, record := range records {
		row := make(Restaurant, len(header))
		for i, col := range header {
			row[col] = nil
			if i < len(record) {
				row[col] = parseCell(record[i], kinds[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// inferColumn 空欄を除く全ての値が数値として読めるかで列の型を決める
func inferColumn(records [][]string, col int) columnKind {
	kind := kindInt
	for _, record := range records {
		if col >= len(record) {
			continue
		}
		v := strings.TrimSpace(record[col])
		if v == "" {
			continue
		}
		if kind == kindInt {
			if _, err := strconv.ParseInt(v, 10, 64); err == nil {
				continue
			}
			kind = kindFloat
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return kindString
		}
	}
	return kind
}

// parseCell 列の型に合わせて値を変換
func parseCell(raw string, kind columnKind) any {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	switch kind {
	case kindInt:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	case kindFloat:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return raw
	}
}

// normalizeColumn 列名を小文字のスネークケースにそろえる
func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Search 都市と名前・カテゴリで絞り込み、総数と指定ページを返す
func (s *restaurantService) Search(query RestaurantQuery) ([]Restaurant, int, error) {
	if query.Offset < 0 {
		return nil, 0, newValidationError("offset", "offsetは0以上で指定してください")
	}
	limit := ClampLimit(query.Limit)

	city := strings.ToLower(strings.TrimSpace(query.City))
	q := strings.ToLower(strings.TrimSpace(query.Q))

	filtered := make([]Restaurant, 0)
	for _, row := range s.rows {
		if city != "" && !strings.Contains(strings.ToLower(row.text("city")), city) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(row.text("name")), q) &&
			!strings.Contains(strings.ToLower(row.text("categories")), q) {
			continue
		}
		filtered = append(filtered, row)
	}

	total := len(filtered)
	if query.Offset >= total {
		return []Restaurant{}, total, nil
	}
	end := query.Offset + limit
	if end > total {
		end = total
	}
	return filtered[query.Offset:end], total, nil
}
