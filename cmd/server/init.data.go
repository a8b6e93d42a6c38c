package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	knowledgemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/models"
	knowledgesvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/service"
	outreachmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/models"
	outreachsvc "github.com/Mbenve9198/bdr-tool-backend/internal/api/outreach/service"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
	"github.com/Mbenve9198/bdr-tool-backend/internal/logger"
)

// InitDefaultData seeds the knowledge base, a starter call script and a
// starter email template. Runs only in INITMODE and only on empty
// collections, so restarting an initialized deployment is a no-op.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("INITMODE disabled, skipping default data")
		return
	}
	log.Info("Starting InitDefaultData...")

	ctx := context.TODO()

	if err := seedKnowledge(ctx); err != nil {
		log.Warnf("Failed to seed knowledge base: %v", err)
	}
	if err := seedScripts(ctx); err != nil {
		log.Warnf("Failed to seed call scripts: %v", err)
	}
	if err := seedTemplates(ctx); err != nil {
		log.Warnf("Failed to seed email templates: %v", err)
	}

	log.Info("InitDefaultData completed")
}

// rateCard builds a carrier-rates knowledge item.
func rateCard(carrier, service, zone string, basePrice, weightMultiplier, maxWeight float64) knowledgemodels.KnowledgeItem {
	now := time.Now().UnixMilli()
	return knowledgemodels.KnowledgeItem{
		Title:    "Tariffe " + carrier + " " + zone + " (" + service + ")",
		Category: knowledgemodels.CategoryCarrierRates,
		Content:  "Listino " + carrier + " per la zona " + zone + ", servizio " + service + ".",
		Tags:     []string{"tariffe", "corrieri"},
		CarrierInfo: &knowledgemodels.CarrierInfo{
			Carrier:          carrier,
			Service:          service,
			Zone:             zone,
			BasePrice:        basePrice,
			WeightMultiplier: weightMultiplier,
			MaxWeight:        maxWeight,
		},
		Priority:    5,
		IsActive:    true,
		Author:      "system",
		LastUpdated: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func knowledgeItem(title, category, content string, tags []string, priority int) knowledgemodels.KnowledgeItem {
	now := time.Now().UnixMilli()
	return knowledgemodels.KnowledgeItem{
		Title:       title,
		Category:    category,
		Content:     content,
		Tags:        tags,
		Priority:    priority,
		IsActive:    true,
		Author:      "system",
		LastUpdated: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func seedKnowledge(ctx context.Context) error {
	svc, err := knowledgesvc.NewKnowledgeService()
	if err != nil {
		return err
	}

	count, err := svc.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Knowledge base already populated, skipping seed")
		return nil
	}

	items := []knowledgemodels.KnowledgeItem{
		// Carrier rate cards
		rateCard("DHL", knowledgemodels.ServiceStandard, knowledgemodels.ZoneItaly, 5.50, 1.20, 30),
		rateCard("DHL", knowledgemodels.ServiceExpress, knowledgemodels.ZoneItaly, 8.90, 1.50, 30),
		rateCard("DHL", knowledgemodels.ServiceStandard, knowledgemodels.ZoneEU, 9.90, 1.80, 30),
		rateCard("DHL", knowledgemodels.ServiceStandard, knowledgemodels.ZoneInternational, 18.50, 2.60, 30),
		rateCard("UPS", knowledgemodels.ServiceStandard, knowledgemodels.ZoneItaly, 6.10, 1.05, 70),
		rateCard("UPS", knowledgemodels.ServiceExpress, knowledgemodels.ZoneItaly, 9.40, 1.35, 70),
		rateCard("UPS", knowledgemodels.ServiceStandard, knowledgemodels.ZoneEU, 10.60, 1.70, 70),
		rateCard("UPS", knowledgemodels.ServiceStandard, knowledgemodels.ZoneInternational, 19.80, 2.40, 70),

		// Sales material
		knowledgeItem(
			"Integrazione multi-corriere",
			knowledgemodels.CategoryPlatformFeatures,
			"Con un'unica integrazione l'e-commerce accede a tutti i corrieri convenzionati: etichette, tracking e resi gestiti da un solo pannello.",
			[]string{"benefits", "integrazioni"},
			8,
		),
		knowledgeItem(
			"Costa troppo",
			knowledgemodels.CategoryObjectionHandling,
			"Le tariffe negoziate fanno risparmiare in media il 20% rispetto ai listini diretti: sui volumi tipici il servizio si ripaga dal primo mese.",
			[]string{"objections", "pricing"},
			7,
		),
		knowledgeItem(
			"Abbiamo gia' un contratto con un corriere",
			knowledgemodels.CategoryObjectionHandling,
			"Il contratto esistente resta utilizzabile: la piattaforma affianca i corrieri gia' attivi e permette di confrontare le tariffe spedizione per spedizione.",
			[]string{"objections"},
			6,
		),
		knowledgeItem(
			"Piani e prezzi",
			knowledgemodels.CategoryPricing,
			"Piano base gratuito fino a 100 spedizioni al mese, piani a crescere in base al volume. Nessun costo di attivazione.",
			[]string{"pricing", "benefits"},
			6,
		),
	}

	if _, err := svc.InsertMany(ctx, items); err != nil {
		return err
	}
	logger.GetAppLogger().Infof("Seeded %d knowledge items", len(items))
	return nil
}

func seedScripts(ctx context.Context) error {
	svc, err := outreachsvc.NewScriptService()
	if err != nil {
		return err
	}

	count, err := svc.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Call scripts already populated, skipping seed")
		return nil
	}

	now := time.Now().UnixMilli()
	script := outreachmodels.CallScript{
		Title: "Cold call e-commerce",
		Type:  outreachmodels.ScriptColdCall,
		Structure: outreachmodels.ScriptStructure{
			Opener:           "Ciao {{contactName}}, sono un BDR di Sendcloud. La chiamo perche' aiutiamo e-commerce come {{companyName}} a semplificare le spedizioni.",
			Hook:             "Ho dato un'occhiata a {{website}} e credo ci sia margine per ridurre i costi di spedizione.",
			ValueProposition: "Con un'unica integrazione avete piu' corrieri, tariffe negoziate e tracking automatico per i vostri clienti.",
			Questions: []outreachmodels.ScriptQuestion{
				{Question: "Quanti ordini spedite in un mese tipico?", Purpose: "qualify volume"},
				{Question: "Con quali corrieri lavorate oggi?", Purpose: "map current setup"},
			},
			ObjectionHandling: []outreachmodels.ObjectionResponse{
				{
					Objection: "Costa troppo",
					Response:  "Le tariffe negoziate fanno risparmiare in media il 20%: sui vostri volumi il servizio si ripaga dal primo mese.",
				},
			},
			Closing:   "Le andrebbe una demo di 20 minuti questa settimana per vedere le tariffe sui vostri volumi reali?",
			NextSteps: "Fissare la demo e inviare un recap via email con le tariffe indicative.",
		},
		IsActive:  true,
		CreatedBy: "system",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := svc.InsertOne(ctx, script); err != nil {
		return err
	}
	logger.GetAppLogger().Info("Seeded default call script")
	return nil
}

func seedTemplates(ctx context.Context) error {
	svc, err := outreachsvc.NewTemplateService()
	if err != nil {
		return err
	}

	count, err := svc.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Email templates already populated, skipping seed")
		return nil
	}

	now := time.Now().UnixMilli()
	template := outreachmodels.EmailTemplate{
		Name:    "Primo contatto e-commerce",
		Type:    outreachmodels.TemplateColdOutreach,
		Subject: "Spedizioni piu' semplici per {{companyName}}",
		Content: outreachmodels.EmailContent{
			Text: "Ciao {{contactName}},\n\n" +
				"sono un BDR di Sendcloud: aiutiamo e-commerce come {{companyName}} a spedire con piu' corrieri da un unico pannello, con tariffe negoziate e tracking automatico.\n\n" +
				"Queste sono le nostre tariffe indicative per un pacco da 2 kg:\n\n" +
				"{{shippingRates}}\n\n" +
				"Le andrebbe una demo di 20 minuti questa settimana?\n\n" +
				"A presto",
		},
		Variables: []outreachmodels.TemplateVariable{
			{
				Name:        "shippingRates",
				Description: "Tabella tariffe generata dal sistema",
				Type:        outreachmodels.VarText,
				Required:    false,
			},
		},
		IsApproved: true,
		ApprovedBy: "system",
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := svc.InsertOne(ctx, template); err != nil {
		return err
	}
	logger.GetAppLogger().Info("Seeded default email template")
	return nil
}
