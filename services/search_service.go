package services

import (
	"context"
	"sort"
	"strings"

	"ems/dto"
	"ems/errors"
	"ems/models"
	"ems/repository"
	"ems/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const (
	searchCandidates   = 10
	searchMinSimilarity = 0.3
)

// SearchService tìm kiếm mờ theo tên trên nhân viên đang hoạt động
type SearchService struct {
	employees repository.EmployeeRepository
	logger    logger.Logger
}

type SearchServiceOptions struct {
	DB        *gorm.DB
	Employees repository.EmployeeRepository
	Logger    logger.Logger
}

func NewSearchService(opts SearchServiceOptions) *SearchService {
	employees := opts.Employees
	if employees == nil {
		employees = repository.NewEmployeeRepository(opts.DB)
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &SearchService{
		employees: employees,
		logger:    log,
	}
}

// Search trả về các nhân viên có tên gần với truy vấn nhất, xếp theo độ tương đồng
func (s *SearchService) Search(ctx context.Context, query string) ([]dto.SearchResult, error) {
	normalizedQuery := normalizeSearchInput(query)
	if normalizedQuery == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Từ khóa tìm kiếm không được để trống", nil)
	}

	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn danh sách nhân viên", err)
	}
	if len(employees) == 0 {
		return []dto.SearchResult{}, nil
	}

	// Gom nhân viên theo tên đã chuẩn hóa, nhiều người có thể trùng tên
	byName := make(map[string][]models.Employee, len(employees))
	keywords := make([]string, 0, len(employees))
	for _, employee := range employees {
		name := normalizeSearchInput(employee.FirstName + " " + employee.LastName)
		if _, ok := byName[name]; !ok {
			keywords = append(keywords, name)
		}
		byName[name] = append(byName[name], employee)
	}

	matcher := createMatcher(keywords)
	candidates := matcher.ClosestN(normalizedQuery, searchCandidates)

	var results []dto.SearchResult
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		similarity := calculateSimilarity(normalizedQuery, candidate)
		if similarity < searchMinSimilarity && !strings.Contains(candidate, normalizedQuery) {
			continue
		}
		for _, employee := range byName[candidate] {
			results = append(results, dto.SearchResult{
				ID:         employee.ID,
				Name:       employee.FirstName + " " + employee.LastName,
				Email:      employee.Email,
				Department: employee.Department,
				Position:   employee.Position,
				Similarity: similarity,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	return results, nil
}

// normalizeSearchInput bỏ dấu và chuyển về chữ thường
func normalizeSearchInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// createMatcher tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}
