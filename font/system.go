package font

import "os"
import "fmt"
import "path/filepath"
import "log/slog"

import "github.com/go-text/typesetting/fontscan"

var _ Store = (*SystemStore)(nil)

// A [Store] for the fonts installed on the system, backed by
// [fontscan.FontMap]. The system font directories are scanned lazily,
// on the first [SystemStore.FindFamily]() call, and the resulting
// index is cached on disk by fontscan to speed up later runs.
type SystemStore struct {
	fontMap *fontscan.FontMap
	logger *slog.Logger
	cacheDir string
	scanned bool
	scanErr error
}

// Creates a new system font store. If logger is nil, nothing is logged.
func NewSystemStore(logger *slog.Logger) *SystemStore {
	if logger == nil { logger = slog.New(discardHandler{}) }
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		logger.Debug("failed resolving font cache dir", "err", err)
		cacheDir = os.TempDir()
	}
	return &SystemStore{
		fontMap: fontscan.NewFontMap(printfLogger{ logger }),
		logger: logger,
		cacheDir: filepath.Join(cacheDir, "fontchain"),
	}
}

// Satisfies the [Store] interface.
func (self *SystemStore) FindFamily(family string) ([]Face, error) {
	err := self.scan()
	if err != nil { return nil, err }

	locations := self.fontMap.FindSystemFonts(family)
	if len(locations) == 0 { return nil, ErrFamilyNotFound }

	faces := make([]Face, 0, len(locations))
	var firstErr error
	for _, location := range locations {
		face, err := self.loadFace(location.File, int(location.Index))
		if err != nil {
			self.logger.Debug("failed loading system font", "file", location.File, "err", err)
			if firstErr == nil { firstErr = err }
			continue
		}
		self.logger.Debug("found system font", "family", family, "name", face.Name,
			"aspect", AspectString(face.Aspect))
		faces = append(faces, face)
	}
	if len(faces) == 0 { return nil, firstErr }
	return faces, nil
}

func (self *SystemStore) scan() error {
	if self.scanned { return self.scanErr }
	self.scanned = true
	err := self.fontMap.UseSystemFonts(self.cacheDir)
	if err != nil {
		self.scanErr = fmt.Errorf("loading system fonts: %w", err)
	}
	return self.scanErr
}

func (self *SystemStore) loadFace(path string, index int) (Face, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil { return Face{}, err }
	return NewFace(fontBytes, index)
}
