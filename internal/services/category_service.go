package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fre-insights/internal/models"
	"fre-insights/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrTransactionNil  = errors.New("transaction cannot be nil")
)

const (
	fuzzyMatchThreshold = 0.7
	// patterns shorter than this only match whole words
	minSubstringPatternLength = 4
)

type categoryService struct {
	categoryRepo        repositories.CategoryRepositoryInterface
	merchantPatterns    []merchantPattern
	descriptionPatterns []descriptionPattern
}

type merchantPattern struct {
	pattern    string
	category   string
	confidence float64
}

type descriptionPattern struct {
	keywords   []string
	category   string
	confidence float64
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{
		categoryRepo:        categoryRepo,
		merchantPatterns:    initMerchantPatterns(),
		descriptionPatterns: initDescriptionPatterns(),
	}
}

// Categorize tries the merchant patterns first, then description keywords
func (s *categoryService) Categorize(description string) (string, float64) {
	if strings.TrimSpace(description) == "" {
		return models.CategoryOther, 0.0
	}

	if category, confidence := s.CategorizeByMerchant(models.NormalizeMerchant(description)); confidence > 0 {
		return category, confidence
	}
	return s.CategorizeByDescription(description)
}

// CategorizeByMerchant categorizes based on merchant name
func (s *categoryService) CategorizeByMerchant(merchantName string) (string, float64) {
	if merchantName == "" {
		return models.CategoryOther, 0.0
	}

	normalized := normalizeForMatching(merchantName)
	words := strings.Fields(strings.ToLower(merchantName))

	for _, mapping := range s.merchantPatterns {
		if matchesPattern(normalized, words, mapping.pattern) {
			return mapping.category, mapping.confidence
		}
	}

	fuzzyMerchant, score := s.FuzzyMatchMerchant(merchantName)
	if score > fuzzyMatchThreshold && fuzzyMerchant != "" {
		for _, mapping := range s.merchantPatterns {
			if mapping.pattern == fuzzyMerchant {
				return mapping.category, score * mapping.confidence
			}
		}
	}

	return models.CategoryOther, 0.0
}

func matchesPattern(normalized string, words []string, pattern string) bool {
	patternNormalized := normalizeForMatching(pattern)
	if len(patternNormalized) >= minSubstringPatternLength {
		return strings.Contains(normalized, patternNormalized)
	}
	for _, w := range words {
		if normalizeForMatching(w) == patternNormalized {
			return true
		}
	}
	return false
}

// CategorizeByDescription categorizes based on transaction description
func (s *categoryService) CategorizeByDescription(description string) (string, float64) {
	if description == "" {
		return models.CategoryOther, 0.0
	}

	normalized := foldTurkish(strings.ToLower(description))

	for _, pattern := range s.descriptionPatterns {
		for _, keyword := range pattern.keywords {
			if strings.Contains(normalized, foldTurkish(strings.ToLower(keyword))) {
				return pattern.category, pattern.confidence
			}
		}
	}

	return models.CategoryOther, 0.0
}

// FuzzyMatchMerchant performs fuzzy string matching on merchant names
func (s *categoryService) FuzzyMatchMerchant(input string) (string, float64) {
	if input == "" {
		return "", 0.0
	}

	input = normalizeForMatching(input)
	var bestMatch string
	var bestScore float64

	for _, mapping := range s.merchantPatterns {
		score := calculateSimilarity(input, normalizeForMatching(mapping.pattern))

		if score > bestScore && score > fuzzyMatchThreshold {
			bestScore = score
			bestMatch = mapping.pattern
		}
	}

	return bestMatch, bestScore
}

// CategorizeTransaction performs complete categorization using all available methods
func (s *categoryService) CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult {
	if transaction == nil {
		return &models.CategorizationResult{
			Category:   models.CategoryOther,
			Method:     models.CategorizationMethodFallback,
			Confidence: 0.0,
		}
	}

	merchant := transaction.Merchant
	if merchant == "" {
		merchant = models.NormalizeMerchant(transaction.Description)
	}

	if merchant != "" {
		category, confidence := s.CategorizeByMerchant(merchant)
		if confidence > 0 {
			method := models.CategorizationMethodMerchant
			if confidence < 0.9 {
				method = models.CategorizationMethodFuzzy
			}
			return &models.CategorizationResult{
				Category:       category,
				Method:         method,
				Confidence:     confidence,
				MatchedPattern: "Merchant:" + merchant,
			}
		}
	}

	if transaction.Description != "" {
		category, confidence := s.CategorizeByDescription(transaction.Description)
		if confidence > 0 {
			return &models.CategorizationResult{
				Category:       category,
				Method:         models.CategorizationMethodDescription,
				Confidence:     confidence,
				MatchedPattern: "Description",
			}
		}
	}

	if transaction.IsIncome() {
		return &models.CategorizationResult{
			Category:   models.CategoryIncome,
			Method:     models.CategorizationMethodFallback,
			Confidence: 0.5,
		}
	}

	return &models.CategorizationResult{
		Category:   models.CategoryOther,
		Method:     models.CategorizationMethodFallback,
		Confidence: 0.0,
	}
}

// ResolveCategory maps the transaction onto one of the user's categories
func (s *categoryService) ResolveCategory(ctx context.Context, userID uuid.UUID, transaction *models.Transaction) (*models.Category, error) {
	if transaction == nil {
		return nil, ErrTransactionNil
	}

	result := s.CategorizeTransaction(transaction)
	if result.Confidence == 0 {
		return nil, nil
	}

	category, err := s.categoryRepo.FindOrCreate(ctx, userID, result.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %q: %w", result.Category, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory is idempotent on the case-insensitive name
func (s *categoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCategory, models.ErrCategoryNameRequired)
	}

	category, err := s.categoryRepo.FindOrCreate(ctx, userID, name)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNameTooLong) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCategory, err)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// initMerchantPatterns lists known merchants in match priority order
func initMerchantPatterns() []merchantPattern {
	return []merchantPattern{
		// Groceries
		{pattern: "Migros", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "CarrefourSA", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Carrefour", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "A101", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "BIM", category: models.CategoryGroceries, confidence: 0.90},
		{pattern: "SOK Market", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Macrocenter", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Getir", category: models.CategoryGroceries, confidence: 0.90},
		{pattern: "Walmart", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Whole Foods", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Lidl", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Aldi", category: models.CategoryGroceries, confidence: 0.95},
		{pattern: "Tesco", category: models.CategoryGroceries, confidence: 0.95},

		// Dining
		{pattern: "Yemeksepeti", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Trendyol Yemek", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Starbucks", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Kahve Dunyasi", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Simit Sarayi", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Burger King", category: models.CategoryDining, confidence: 0.95},
		{pattern: "McDonald", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Dominos", category: models.CategoryDining, confidence: 0.95},
		{pattern: "Subway", category: models.CategoryDining, confidence: 0.95},

		// Transportation
		{pattern: "Istanbulkart", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "BiTaksi", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "Uber", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "Opet", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "Petrol Ofisi", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "Shell", category: models.CategoryTransportation, confidence: 0.95},
		{pattern: "BP", category: models.CategoryTransportation, confidence: 0.90},

		// Entertainment
		{pattern: "Netflix", category: models.CategoryEntertainment, confidence: 0.95},
		{pattern: "Spotify", category: models.CategoryEntertainment, confidence: 0.95},
		{pattern: "Disney", category: models.CategoryEntertainment, confidence: 0.90},
		{pattern: "YouTube", category: models.CategoryEntertainment, confidence: 0.90},
		{pattern: "Exxen", category: models.CategoryEntertainment, confidence: 0.95},
		{pattern: "BluTV", category: models.CategoryEntertainment, confidence: 0.95},
		{pattern: "Steam", category: models.CategoryEntertainment, confidence: 0.90},
		{pattern: "Biletix", category: models.CategoryEntertainment, confidence: 0.95},

		// Shopping
		{pattern: "Trendyol", category: models.CategoryShopping, confidence: 0.90},
		{pattern: "Hepsiburada", category: models.CategoryShopping, confidence: 0.95},
		{pattern: "Amazon", category: models.CategoryShopping, confidence: 0.95},
		{pattern: "LC Waikiki", category: models.CategoryShopping, confidence: 0.95},
		{pattern: "Teknosa", category: models.CategoryShopping, confidence: 0.95},
		{pattern: "MediaMarkt", category: models.CategoryShopping, confidence: 0.95},
		{pattern: "Zara", category: models.CategoryShopping, confidence: 0.90},
		{pattern: "Ikea", category: models.CategoryShopping, confidence: 0.95},

		// Bills & Utilities
		{pattern: "Turkcell", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "Vodafone", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "Turk Telekom", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "Superonline", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "Enerjisa", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "IGDAS", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "ISKI", category: models.CategoryBillsUtilities, confidence: 0.95},
		{pattern: "Verizon", category: models.CategoryBillsUtilities, confidence: 0.95},

		// Healthcare
		{pattern: "Acibadem", category: models.CategoryHealthcare, confidence: 0.95},
		{pattern: "Walgreens", category: models.CategoryHealthcare, confidence: 0.95},
		{pattern: "CVS", category: models.CategoryHealthcare, confidence: 0.90},

		// Travel
		{pattern: "Turkish Airlines", category: models.CategoryTravel, confidence: 0.95},
		{pattern: "THY", category: models.CategoryTravel, confidence: 0.90},
		{pattern: "Pegasus", category: models.CategoryTravel, confidence: 0.95},
		{pattern: "Booking.com", category: models.CategoryTravel, confidence: 0.95},
		{pattern: "Airbnb", category: models.CategoryTravel, confidence: 0.95},
		{pattern: "Marriott", category: models.CategoryTravel, confidence: 0.95},
		{pattern: "Hilton", category: models.CategoryTravel, confidence: 0.95},

		// Education
		{pattern: "Udemy", category: models.CategoryEducation, confidence: 0.95},
		{pattern: "Coursera", category: models.CategoryEducation, confidence: 0.95},
	}
}

// initDescriptionPatterns initializes description-based categorization patterns
func initDescriptionPatterns() []descriptionPattern {
	return []descriptionPattern{
		{
			keywords:   []string{"Maaş", "Maas", "Salary", "Payroll", "Direct Deposit", "Ücret Ödemesi"},
			category:   models.CategoryIncome,
			confidence: 0.95,
		},
		{
			keywords:   []string{"Hesap İşletim", "Kart Aidatı", "Komisyon", "BSMV", "Service Charge", "Bank Fee", "Overdraft Fee"},
			category:   models.CategoryFees,
			confidence: 0.90,
		},
		{
			keywords:   []string{"Kira", "Rent Payment", "Monthly Rent", "Site Aidatı"},
			category:   models.CategoryRent,
			confidence: 0.90,
		},
		{
			keywords:   []string{"ATM", "Nakit Çekim", "Cash Withdrawal"},
			category:   models.CategoryCash,
			confidence: 0.90,
		},
		{
			keywords:   []string{"Fatura", "Elektrik", "Doğalgaz", "Internet", "Utility"},
			category:   models.CategoryBillsUtilities,
			confidence: 0.85,
		},
		{
			keywords:   []string{"Eczane", "Hastane", "Pharmacy", "Clinic"},
			category:   models.CategoryHealthcare,
			confidence: 0.85,
		},
		{
			keywords:   []string{"Restoran", "Restaurant", "Cafe", "Kafe", "Lokanta"},
			category:   models.CategoryDining,
			confidence: 0.80,
		},
	}
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	// two rolling rows instead of the full matrix
	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

var turkishFolder = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "i̇", "i", "ö", "o", "ş", "s", "ü", "u",
)

// foldTurkish maps Turkish letters onto their ASCII base so "MAAŞ" and "MAAS" match
func foldTurkish(s string) string {
	return turkishFolder.Replace(s)
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = foldTurkish(strings.ToLower(strings.TrimSpace(s)))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}
