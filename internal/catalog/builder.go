package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"app/internal/domain/model"

	"go.uber.org/zap"
)

// 画像として受け付ける拡張子
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Build は rootDir 以下を再帰的に走査してメニューを組み立て、
// オーバーライドをマージしたカタログを返す。
//   - 相対パスの辞書順でid採番する（走査順に依存しない）
//   - 画像以外・読めないサブツリーはスキップして続行する
//   - rootDir が無ければ警告を出して空カタログを返す（起動は止めない）
func Build(rootDir string, overrides []Override, logger *zap.Logger) *Catalog {
	if _, err := os.Stat(rootDir); err != nil {
		logger.Warn("menu root not found, building empty catalog",
			zap.String("root", rootDir), zap.Error(err))
		return newCatalog(nil)
	}

	var rels []string
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 読めないエントリは飛ばす（全体を失敗させない）
			logger.Warn("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !imageExts[ext] {
			return nil
		}
		rel, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			return nil
		}
		rels = append(rels, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		logger.Warn("menu walk aborted", zap.String("root", rootDir), zap.Error(err))
	}

	// idを再起動間でも安定させるため、相対パスの辞書順で採番する
	sort.Strings(rels)

	items := make([]model.MenuItem, 0, len(rels))
	for i, rel := range rels {
		items = append(items, model.MenuItem{
			ID:          int64(i + 1),
			Name:        titleCaseFilename(filepath.Base(rel)),
			Description: "",
			Price:       0,
			Category:    categoryOf(rel),
			Available:   true,
			Image:       "/images/Menu/" + rel,
		})
	}

	items = applyOverrides(items, overrides, logger)

	logger.Info("catalog built",
		zap.String("root", rootDir),
		zap.Int("items", len(items)),
		zap.Int("overrides", len(overrides)))

	return newCatalog(items)
}

// titleCaseFilename はファイル名を表示名にする。
// 拡張子を外し、_ - ( ) + を空白にして各語の先頭を大文字化する。
func titleCaseFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', '(', ')', '+':
			return ' '
		}
		return r
	}, base)

	words := strings.Fields(base)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// categoryOf は "MAIN / SUB" 形式のカテゴリ文字列を作る。
// MAIN はルート直下のディレクトリ名を大文字化、SUB はその次の階層。
// 階層が無ければそれぞれ OTHER / Other にする。
func categoryOf(rel string) string {
	parts := strings.Split(rel, "/")
	dirs := parts[:len(parts)-1]

	main := "OTHER"
	if len(dirs) >= 1 {
		main = strings.ToUpper(dirs[0])
	}
	sub := "Other"
	if len(dirs) >= 2 {
		sub = dirs[1]
	}
	return main + " / " + sub
}
