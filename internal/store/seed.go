package store

import (
	"context"
	"time"

	"github.com/lafaom-mao/portal/internal/entities"
	"gorm.io/gorm"
)

// seed fills an empty database with sample catalog entries so list commands
// have something to show before the first successful API fetch.
func seed(db *gorm.DB) error {

	repo := &Snapshots{db: db}
	ctx := context.Background()

	if err := ReplaceCollection(ctx, repo, CollectionTrainings, sampleTrainings(),
		func(t entities.Training) string { return t.ID }); err != nil {
		return err
	}

	return ReplaceCollection(ctx, repo, CollectionNews, samplePosts(),
		func(p entities.BlogPost) string { return p.ID })
}

func sampleTrainings() []entities.Training {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []entities.Training{
		{
			ID:             "sample-1",
			Title:          "Développement Web Fullstack",
			Status:         entities.TrainingActive,
			Duration:       40,
			DurationUnit:   "HOURS",
			TrainingType:   entities.TrainingOnSite,
			Presentation:   "<p>Une formation complète pour apprendre à créer des applications web avec frontend et backend.</p>",
			TargetSkills:   "<p>Connaissance de base en programmation</p>",
			Program:        "<ul><li>Créer des applications web complètes</li><li>Gérer des bases de données</li><li>Déployer un site web</li></ul>",
			TargetAudience: "<p>Développeurs débutants ou professionnels souhaitant se former au développement fullstack</p>",
			Prerequisites:  "<p>Cette formation couvre les technologies modernes pour le développement web</p>",
			Enrollment:     "<p>Inscription ouverte via notre plateforme en ligne</p>",
			CreatedAt:      created,
		},
		{
			ID:             "sample-2",
			Title:          "Formation AVMJ - Auxiliaire de Vie en Univers Judiciaire",
			Status:         entities.TrainingActive,
			Duration:       120,
			DurationUnit:   "HOURS",
			TrainingType:   entities.TrainingHybrid,
			Presentation:   "<p>Formation professionnelle pour devenir Auxiliaire de Vie en Univers Judiciaire.</p>",
			TargetSkills:   "<p>Compétences en accompagnement judiciaire</p>",
			Program:        "<ul><li>Droit pénal et civil</li><li>Techniques d'accompagnement</li><li>Éthique professionnelle</li></ul>",
			TargetAudience: "<p>Professionnels souhaitant se spécialiser dans l'accompagnement judiciaire</p>",
			Prerequisites:  "<p>Niveau baccalauréat ou équivalent</p>",
			Enrollment:     "<p>Inscription sur dossier</p>",
			CreatedAt:      created,
		},
		{
			ID:             "sample-3",
			Title:          "Gestion de Projets Humanitaires",
			Status:         entities.TrainingActive,
			Duration:       60,
			DurationUnit:   "HOURS",
			TrainingType:   entities.TrainingOnline,
			Presentation:   "<p>Formation complète en gestion de projets dans le secteur humanitaire.</p>",
			TargetSkills:   "<p>Gestion de projet, planification, suivi</p>",
			Program:        "<ul><li>Cycle de vie du projet</li><li>Outils de gestion</li><li>Évaluation et reporting</li></ul>",
			TargetAudience: "<p>Professionnels du secteur humanitaire et social</p>",
			Prerequisites:  "<p>Expérience dans le secteur social ou humanitaire</p>",
			Enrollment:     "<p>Inscription en ligne</p>",
			CreatedAt:      created,
		},
	}
}

func samplePosts() []entities.BlogPost {
	published := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	return []entities.BlogPost{
		{
			ID:          "sample-1",
			Title:       "Nouvelles sessions de formation ouvertes",
			Content:     "<p>Les inscriptions pour les sessions du premier semestre sont ouvertes.</p>",
			Category:    "Formation",
			IsPublished: true,
			PublishedAt: published,
			CreatedAt:   published,
		},
		{
			ID:          "sample-2",
			Title:       "Programme d'accompagnement des familles",
			Content:     "<p>Un nouveau programme d'accompagnement des familles en milieu judiciaire démarre ce trimestre.</p>",
			Category:    "Accompagnement",
			IsPublished: true,
			PublishedAt: published,
			CreatedAt:   published,
		},
		{
			ID:          "sample-3",
			Title:       "Partenariat avec les acteurs de la réinsertion",
			Content:     "<p>Signature d'une convention de partenariat pour renforcer les parcours de réinsertion.</p>",
			Category:    "Partenariat",
			IsPublished: true,
			PublishedAt: published,
			CreatedAt:   published,
		},
	}
}
