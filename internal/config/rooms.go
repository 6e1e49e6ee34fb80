package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Room describes one entry in the classroom catalog.
type Room struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Capacity int      `yaml:"capacity"`
	Features []string `yaml:"features"`
	Type     string   `yaml:"type"`
}

type roomsFile struct {
	Rooms []Room `yaml:"rooms"`
}

// DefaultRooms returns the built-in classroom catalog used when no catalog
// file is configured.
func DefaultRooms() []Room {
	return []Room{
		{ID: "801", Name: "801호", Capacity: 25, Features: []string{"프로젝터", "화이트보드"}, Type: "일반강의실"},
		{ID: "802", Name: "802호", Capacity: 30, Features: []string{"프로젝터", "화이트보드"}, Type: "일반강의실"},
		{ID: "803", Name: "803호", Capacity: 25, Features: []string{"원형테이블", "화이트보드"}, Type: "세미나실"},
		{ID: "804", Name: "804호", Capacity: 40, Features: []string{"프로젝터", "음향시설"}, Type: "대형강의실"},
		{ID: "807", Name: "807호", Capacity: 35, Features: []string{"프로젝터", "화이트보드"}, Type: "일반강의실"},
		{ID: "808", Name: "808호", Capacity: 20, Features: []string{"컴퓨터", "프로젝터"}, Type: "컴퓨터실"},
	}
}

// LoadRooms reads the classroom catalog from a YAML file. An empty path
// yields the built-in catalog.
func LoadRooms(path string) ([]Room, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultRooms(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("강의실 목록 파일을 읽을 수 없습니다: %w", err)
	}

	var file roomsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("강의실 목록 파일 형식이 올바르지 않습니다: %w", err)
	}
	if len(file.Rooms) == 0 {
		return nil, fmt.Errorf("강의실 목록 파일에 강의실이 없습니다: %s", path)
	}

	seen := make(map[string]struct{}, len(file.Rooms))
	for i, room := range file.Rooms {
		id := strings.TrimSpace(room.ID)
		if id == "" {
			return nil, fmt.Errorf("강의실 항목 %d에 id가 없습니다", i+1)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("강의실 id가 중복되었습니다: %s", id)
		}
		seen[id] = struct{}{}
		if room.Capacity < 0 {
			return nil, fmt.Errorf("강의실 %s의 수용 인원이 올바르지 않습니다", id)
		}
		file.Rooms[i].ID = id
	}

	sort.Slice(file.Rooms, func(i, j int) bool { return file.Rooms[i].ID < file.Rooms[j].ID })
	return file.Rooms, nil
}
