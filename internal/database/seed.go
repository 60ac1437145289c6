package database

import (
	"errors"
	"fmt"
	"time"

	"carlookup/internal/models"
	"carlookup/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedUser describes an account to ensure during seeding.
type SeedUser struct {
	Username string
	Email    string
	Password string
	Role     string
}

type makeDefinition struct {
	ID      string
	Name    string
	Country string
}

type modelDefinition struct {
	Name string
	Year int
}

// Well-known manufacturers with stable IDs so repeated seeding is consistent.
var makeDefinitions = []makeDefinition{
	{"f47ac10b-58cc-4372-a567-0e02b2c3d479", "Toyota", "Japan"},
	{"f47ac10b-58cc-4372-a567-0e02b2c3d480", "Honda", "Japan"},
	{"f47ac10b-58cc-4372-a567-0e02b2c3d481", "Ford", "United States"},
	{"f47ac10b-58cc-4372-a567-0e02b2c3d482", "BMW", "Germany"},
	{"f47ac10b-58cc-4372-a567-0e02b2c3d483", "Mercedes-Benz", "Germany"},
	{"a47ac10b-58cc-4372-a567-0e02b2c3d484", "Volkswagen", "Germany"},
	{"b47ac10b-58cc-4372-a567-0e02b2c3d485", "Chevrolet", "United States"},
	{"c47ac10b-58cc-4372-a567-0e02b2c3d486", "Nissan", "Japan"},
	{"d47ac10b-58cc-4372-a567-0e02b2c3d487", "Hyundai", "South Korea"},
	{"e47ac10b-58cc-4372-a567-0e02b2c3d488", "Kia", "South Korea"},
	{"f57ac10b-58cc-4372-a567-0e02b2c3d489", "Audi", "Germany"},
	{"067ac10b-58cc-4372-a567-0e02b2c3d48a", "Peugeot", "France"},
	{"177ac10b-58cc-4372-a567-0e02b2c3d48b", "Renault", "France"},
	{"287ac10b-58cc-4372-a567-0e02b2c3d48c", "Fiat", "Italy"},
	{"397ac10b-58cc-4372-a567-0e02b2c3d48d", "Subaru", "Japan"},
	{"4a7ac10b-58cc-4372-a567-0e02b2c3d48e", "Mazda", "Japan"},
	{"5b7ac10b-58cc-4372-a567-0e02b2c3d48f", "Tesla", "United States"},
	{"6c7ac10b-58cc-4372-a567-0e02b2c3d490", "Volvo", "Sweden"},
	{"7d7ac10b-58cc-4372-a567-0e02b2c3d491", "Mitsubishi", "Japan"},
	{"8e7ac10b-58cc-4372-a567-0e02b2c3d492", "Land Rover", "United Kingdom"},
	{"9f7ac10b-58cc-4372-a567-0e02b2c3d493", "Jaguar", "United Kingdom"},
	{"a07ac10b-58cc-4372-a567-0e02b2c3d494", "Porsche", "Germany"},
	{"b17ac10b-58cc-4372-a567-0e02b2c3d495", "Lexus", "Japan"},
	{"c27ac10b-58cc-4372-a567-0e02b2c3d496", "Acura", "Japan"},
	{"d37ac10b-58cc-4372-a567-0e02b2c3d497", "Infiniti", "Japan"},
}

var modelsByMake = map[string][]modelDefinition{
	"Toyota":        {{"Camry", 2023}, {"Corolla", 2023}, {"Prius", 2023}, {"RAV4", 2022}, {"Highlander", 2023}, {"Tacoma", 2023}, {"4Runner", 2022}, {"Supra", 2023}},
	"Honda":         {{"Civic", 2023}, {"Accord", 2023}, {"CR-V", 2022}, {"Pilot", 2023}, {"Odyssey", 2022}, {"Ridgeline", 2023}, {"HR-V", 2023}, {"NSX", 2022}},
	"Ford":          {{"F-150", 2023}, {"Mustang", 2023}, {"Explorer", 2022}, {"Escape", 2023}, {"Edge", 2022}, {"Bronco", 2023}, {"Ranger", 2023}, {"Maverick", 2023}},
	"BMW":           {{"3 Series", 2023}, {"5 Series", 2023}, {"7 Series", 2023}, {"X3", 2022}, {"X5", 2022}, {"Z4", 2023}, {"i4", 2023}, {"M3", 2023}},
	"Mercedes-Benz": {{"C-Class", 2023}, {"E-Class", 2023}, {"S-Class", 2022}, {"GLC", 2023}, {"GLE", 2022}, {"G-Class", 2023}, {"EQS", 2023}, {"AMG GT", 2023}},
	"Volkswagen":    {{"Golf", 2023}, {"Passat", 2022}, {"Tiguan", 2023}, {"Jetta", 2023}, {"Atlas", 2023}, {"ID.4", 2023}, {"GTI", 2023}, {"Polo", 2023}},
	"Chevrolet":     {{"Silverado", 2023}, {"Malibu", 2022}, {"Equinox", 2023}, {"Camaro", 2023}, {"Tahoe", 2022}, {"Suburban", 2023}, {"Corvette", 2023}, {"Bolt EV", 2023}},
	"Nissan":        {{"Altima", 2023}, {"Sentra", 2022}, {"Rogue", 2023}, {"Maxima", 2022}, {"Pathfinder", 2023}, {"Frontier", 2023}, {"GT-R", 2023}, {"Leaf", 2023}},
	"Hyundai":       {{"Elantra", 2023}, {"Sonata", 2022}, {"Tucson", 2023}, {"Santa Fe", 2022}, {"Palisade", 2023}, {"Kona", 2023}, {"Ioniq 5", 2023}, {"Veloster", 2022}},
	"Kia":           {{"Optima", 2022}, {"Soul", 2023}, {"Sportage", 2023}, {"Sorento", 2022}, {"Telluride", 2023}, {"Forte", 2023}, {"Stinger", 2023}, {"EV6", 2023}},
	"Audi":          {{"A4", 2023}, {"A6", 2022}, {"Q5", 2023}, {"Q7", 2022}, {"A3", 2023}, {"TT", 2023}, {"R8", 2023}, {"e-tron", 2023}},
	"Peugeot":       {{"208", 2023}, {"308", 2022}, {"3008", 2023}, {"5008", 2023}, {"2008", 2023}, {"508", 2023}, {"Rifter", 2023}, {"e-208", 2023}},
	"Renault":       {{"Clio", 2023}, {"Megane", 2022}, {"Captur", 2023}, {"Kadjar", 2022}, {"Koleos", 2023}, {"Twingo", 2023}, {"Zoe", 2023}, {"Arkana", 2023}},
	"Fiat":          {{"500", 2023}, {"Panda", 2022}, {"Tipo", 2023}, {"500X", 2023}, {"500L", 2020}, {"Strada", 2023}, {"Ducato", 2023}, {"500e", 2023}},
	"Subaru":        {{"Impreza", 2023}, {"Forester", 2022}, {"Outback", 2023}, {"Crosstrek", 2022}, {"Legacy", 2023}, {"Ascent", 2023}, {"BRZ", 2023}, {"WRX", 2023}},
	"Mazda":         {{"Mazda3", 2023}, {"Mazda6", 2022}, {"CX-5", 2023}, {"CX-9", 2022}, {"CX-30", 2023}, {"CX-50", 2023}, {"MX-5 Miata", 2023}, {"MX-30", 2022}},
	"Tesla":         {{"Model S", 2023}, {"Model 3", 2023}, {"Model X", 2022}, {"Model Y", 2023}, {"Cybertruck", 2024}, {"Roadster", 2020}, {"Semi", 2023}, {"Model S Plaid", 2023}},
	"Volvo":         {{"S60", 2023}, {"V60", 2022}, {"XC60", 2023}, {"XC90", 2022}, {"S90", 2023}, {"V90", 2023}, {"XC40", 2023}, {"C40", 2023}},
	"Mitsubishi":    {{"Outlander", 2023}, {"Eclipse Cross", 2023}, {"Mirage", 2023}, {"Lancer", 2017}, {"Pajero", 2021}, {"ASX", 2023}, {"L200", 2023}, {"Outlander PHEV", 2023}},
	"Land Rover":    {{"Defender", 2023}, {"Discovery", 2022}, {"Range Rover", 2023}, {"Range Rover Sport", 2023}, {"Range Rover Evoque", 2023}, {"Range Rover Velar", 2023}, {"Discovery Sport", 2023}, {"Defender 110", 2023}},
	"Jaguar":        {{"XE", 2022}, {"XF", 2023}, {"F-Pace", 2023}, {"E-Pace", 2023}, {"I-Pace", 2023}, {"F-Type", 2023}, {"XJ", 2019}, {"F-Pace SVR", 2023}},
	"Porsche":       {{"911", 2023}, {"Cayenne", 2022}, {"Macan", 2023}, {"Panamera", 2022}, {"Taycan", 2023}, {"718 Boxster", 2023}, {"718 Cayman", 2023}, {"911 GT3", 2023}},
	"Lexus":         {{"ES", 2023}, {"IS", 2022}, {"RX", 2023}, {"NX", 2023}, {"GX", 2023}, {"LX", 2023}, {"UX", 2023}, {"LC", 2023}},
	"Acura":         {{"TLX", 2023}, {"RDX", 2022}, {"MDX", 2023}, {"ILX", 2022}, {"NSX", 2022}, {"Integra", 2023}, {"TLX Type S", 2023}, {"MDX Type S", 2023}},
	"Infiniti":      {{"Q50", 2022}, {"QX50", 2023}, {"QX60", 2022}, {"QX80", 2023}, {"Q60", 2022}, {"Q70", 2019}, {"QX70", 2017}, {"Q50 Red Sport", 2023}},
}

var roleDescriptions = map[string]string{
	models.RoleAdmin:  "Full access including deletes",
	models.RoleEditor: "Can create and update car makes and models",
	models.RoleReader: "Read-only access",
}

// Seed populates roles, the given users, and reference car data.
// It is idempotent: existing rows are left untouched.
func Seed(db *gorm.DB, users []SeedUser, log *zap.Logger) error {
	roleIDs, err := seedRoles(db, log)
	if err != nil {
		return err
	}

	if err := seedUsers(db, users, roleIDs, log); err != nil {
		return err
	}

	if err := seedCarData(db, log); err != nil {
		return err
	}

	return nil
}

func seedRoles(db *gorm.DB, log *zap.Logger) (map[string]uuid.UUID, error) {
	roleIDs := make(map[string]uuid.UUID)

	for _, name := range []string{models.RoleAdmin, models.RoleEditor, models.RoleReader} {
		var role models.Role
		err := db.Where("name = ?", name).First(&role).Error
		switch {
		case err == nil:
			// already present
		case errors.Is(err, gorm.ErrRecordNotFound):
			role = models.Role{
				RoleID:      uuid.New(),
				Name:        name,
				Description: roleDescriptions[name],
			}
			if err := db.Create(&role).Error; err != nil {
				return nil, fmt.Errorf("create role %s: %w", name, err)
			}
			log.Info("Seeded role", zap.String("role", name))
		default:
			return nil, fmt.Errorf("query role %s: %w", name, err)
		}
		roleIDs[name] = role.RoleID
	}

	return roleIDs, nil
}

func seedUsers(db *gorm.DB, users []SeedUser, roleIDs map[string]uuid.UUID, log *zap.Logger) error {
	for _, su := range users {
		var existing models.User
		err := db.Where("username = ?", su.Username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("query user %s: %w", su.Username, err)
		}

		salt, err := utils.GenerateSalt()
		if err != nil {
			return fmt.Errorf("generate salt for %s: %w", su.Username, err)
		}
		hash, err := utils.HashPassword(su.Password, salt)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", su.Username, err)
		}

		roleID, ok := roleIDs[su.Role]
		if !ok {
			return fmt.Errorf("unknown role %q for user %s", su.Role, su.Username)
		}

		user := models.User{
			UserID:       uuid.New(),
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: hash,
			Salt:         salt,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", su.Username, err)
		}
		if err := db.Create(&models.UserRole{
			UserID:     user.UserID,
			RoleID:     roleID,
			AssignedAt: time.Now().UTC(),
		}).Error; err != nil {
			return fmt.Errorf("assign role to %s: %w", su.Username, err)
		}
		log.Info("Seeded user", zap.String("username", su.Username), zap.String("role", su.Role))
	}

	return nil
}

func seedCarData(db *gorm.DB, log *zap.Logger) error {
	var makeCount int64
	if err := db.Model(&models.CarMake{}).Count(&makeCount).Error; err != nil {
		return fmt.Errorf("count car makes: %w", err)
	}

	makeIDs := make(map[string]uuid.UUID, len(makeDefinitions))
	for _, md := range makeDefinitions {
		makeIDs[md.Name] = uuid.MustParse(md.ID)
	}

	if makeCount == 0 {
		makes := make([]models.CarMake, 0, len(makeDefinitions))
		for _, md := range makeDefinitions {
			makes = append(makes, models.CarMake{
				MakeID:          makeIDs[md.Name],
				Name:            md.Name,
				CountryOfOrigin: md.Country,
			})
		}
		if err := db.Create(&makes).Error; err != nil {
			return fmt.Errorf("seed car makes: %w", err)
		}
		log.Info("Seeded car makes", zap.Int("count", len(makes)))
	}

	var modelCount int64
	if err := db.Model(&models.CarModel{}).Count(&modelCount).Error; err != nil {
		return fmt.Errorf("count car models: %w", err)
	}
	if modelCount == 0 {
		carModels := make([]models.CarModel, 0, len(modelsByMake)*8)
		for makeName, defs := range modelsByMake {
			makeID, ok := makeIDs[makeName]
			if !ok {
				continue
			}
			for _, def := range defs {
				carModels = append(carModels, models.CarModel{
					ModelID:   uuid.New(),
					MakeID:    makeID,
					Name:      def.Name,
					ModelYear: def.Year,
				})
			}
		}
		if err := db.Create(&carModels).Error; err != nil {
			return fmt.Errorf("seed car models: %w", err)
		}
		log.Info("Seeded car models", zap.Int("count", len(carModels)))
	}

	return nil
}
