package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wgdzlh/rasterlap/utils"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyManifest = errors.New("manifest has no task")
	ErrNoStudent     = errors.New("task has no student raster")
	ErrEncoding      = errors.New("unsupported manifest encoding")
)

// 批量评分清单
//
//	run_id: lab-3
//	encoding: GBK
//	tasks:
//	  - id: alice
//	    student: alice/landcover.tif
//	    correct: [ref/a.tif, ref/b.tif]
type Manifest struct {
	RunId    string `yaml:"run_id"`
	Encoding string `yaml:"encoding"`
	Tasks    []Task `yaml:"tasks"`
}

type Task struct {
	Id      string   `yaml:"id"`
	Student string   `yaml:"student"`
	Correct []string `yaml:"correct"`
}

// 读取清单文件，相对路径按清单所在目录解析
func LoadManifest(path, encoding string) (m *Manifest, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	return ParseManifest(data, encoding, filepath.Dir(path))
}

// encoding键在UTF-8与GBK下字节相同，可在解码前直接匹配
var encodingKey = regexp.MustCompile(`(?m)^encoding:[ \t]*["']?([A-Za-z0-9_-]+)`)

// 清单自身声明的编码，未声明时为空
func DetectEncoding(data []byte) string {
	if sm := encodingKey.FindSubmatch(data); sm != nil {
		return string(sm[1])
	}
	return ""
}

// encoding为空时使用清单中的encoding键
func ParseManifest(data []byte, encoding, baseDir string) (m *Manifest, err error) {
	if strings.TrimSpace(encoding) == "" {
		encoding = DetectEncoding(data)
	}
	if !utils.IsUtf8Enc(encoding) {
		if !strings.EqualFold(strings.TrimSpace(encoding), utils.GBK) {
			err = fmt.Errorf("%w: %s", ErrEncoding, encoding)
			return
		}
		if data, err = utils.GbkToUtf8(data); err != nil {
			return
		}
	}
	m = &Manifest{}
	if err = yaml.Unmarshal(data, m); err != nil {
		return
	}
	if utils.IsUtf8Enc(encoding) {
		m.Encoding = utils.UTF_8
	} else {
		m.Encoding = utils.GBK
	}
	if len(m.Tasks) == 0 {
		err = ErrEmptyManifest
		return
	}
	if m.RunId == "" {
		m.RunId = uuid.NewString()
	}
	for i := range m.Tasks {
		t := &m.Tasks[i]
		if t.Student == "" {
			err = fmt.Errorf("task %d: %w", i, ErrNoStudent)
			return
		}
		t.Student = utils.ResolvePath(baseDir, t.Student)
		for j, c := range t.Correct {
			t.Correct[j] = utils.ResolvePath(baseDir, c)
		}
		if t.Id == "" {
			t.Id = utils.GetFilenameWithoutExt(t.Student)
		}
	}
	return
}
