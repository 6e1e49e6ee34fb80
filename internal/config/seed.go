package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/classroom-reservation/internal/timetable"
)

type seedFile struct {
	Lectures []seedLecture `yaml:"lectures"`
}

type seedLecture struct {
	Room       string `yaml:"room"`
	Day        string `yaml:"day"`
	Periods    string `yaml:"periods"`
	Subject    string `yaml:"subject"`
	Instructor string `yaml:"instructor"`
}

// LoadTimetableSeed reads recurring lecture slots from a YAML file so a fresh
// database can be populated on startup. An empty path yields no lectures,
// which leaves the grid reservation-only.
func LoadTimetableSeed(path string) ([]timetable.LectureSlot, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("시간표 파일을 읽을 수 없습니다: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("시간표 파일 형식이 올바르지 않습니다: %w", err)
	}

	lectures := make([]timetable.LectureSlot, 0, len(file.Lectures))
	for i, entry := range file.Lectures {
		room := strings.TrimSpace(entry.Room)
		if room == "" {
			return nil, fmt.Errorf("시간표 항목 %d에 강의실이 없습니다", i+1)
		}
		day, err := timetable.ParseDayName(entry.Day)
		if err != nil {
			return nil, fmt.Errorf("시간표 항목 %d의 요일이 올바르지 않습니다: %w", i+1, err)
		}
		if _, _, err := timetable.ParsePeriods(entry.Periods); err != nil {
			return nil, fmt.Errorf("시간표 항목 %d의 교시가 올바르지 않습니다: %w", i+1, err)
		}
		lectures = append(lectures, timetable.LectureSlot{
			RoomID:     room,
			Weekday:    day,
			Periods:    strings.TrimSpace(entry.Periods),
			Subject:    strings.TrimSpace(entry.Subject),
			Instructor: strings.TrimSpace(entry.Instructor),
		})
	}
	return lectures, nil
}
