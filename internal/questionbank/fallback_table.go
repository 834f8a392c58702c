package questionbank

import "pharmacademy/internal/model"

type fallbackEntry struct {
	key       string
	questions []model.Question
}

// fallbackTable is consulted in order; the first key contained in the
// requested category wins.
var fallbackTable = []fallbackEntry{
	{
		key:       "Pharmacology",
		questions: []model.Question{
			{
				Question:      "Which of the following is the primary mechanism of action of aspirin?",
				Options:       []string{"Inhibition of cyclooxygenase (COX) enzymes", "Inhibition of lipoxygenase", "Activation of prostaglandin receptors", "Inhibition of thromboxane synthesis only"},
				CorrectAnswer: 0,
				Explanation:   "Aspirin works by irreversibly inhibiting cyclooxygenase (COX) enzymes, which are responsible for prostaglandin synthesis.",
			},
			{
				Question:      "What is the therapeutic drug monitoring range for digoxin?",
				Options:       []string{"0.5-2.0 ng/mL", "5-10 ng/mL", "10-20 ng/mL", "20-30 ng/mL"},
				CorrectAnswer: 0,
				Explanation:   "The therapeutic range for digoxin is 0.5-2.0 ng/mL. Levels above 2.0 ng/mL increase the risk of toxicity.",
			},
			{
				Question:      "Which receptor does morphine primarily act on?",
				Options:       []string{"Mu (μ) opioid receptor", "Delta (δ) receptor", "Kappa (κ) receptor", "NMDA receptor"},
				CorrectAnswer: 0,
				Explanation:   "Morphine is a mu (μ) opioid receptor agonist, which mediates its analgesic effects.",
			},
			{
				Question:      "What is the mechanism of action of warfarin?",
				Options:       []string{"Vitamin K epoxide reductase inhibition", "Direct thrombin inhibition", "Factor Xa inhibition", "Platelet aggregation inhibition"},
				CorrectAnswer: 0,
				Explanation:   "Warfarin inhibits vitamin K epoxide reductase, preventing the synthesis of vitamin K-dependent clotting factors.",
			},
			{
				Question:      "Which cytochrome P450 enzyme is responsible for metabolizing most drugs?",
				Options:       []string{"CYP3A4", "CYP2D6", "CYP1A2", "CYP2C9"},
				CorrectAnswer: 0,
				Explanation:   "CYP3A4 is the most abundant CYP enzyme and metabolizes approximately 50% of all drugs.",
			},
		},
	},
	{
		key:       "Clinical Pharmacy",
		questions: []model.Question{
			{
				Question:      "What is the first-line treatment for type 2 diabetes mellitus?",
				Options:       []string{"Metformin", "Insulin", "Sulfonylureas", "DPP-4 inhibitors"},
				CorrectAnswer: 0,
				Explanation:   "Metformin is the first-line treatment for type 2 diabetes due to its efficacy, safety profile, and cardiovascular benefits.",
			},
			{
				Question:      "Which antibiotic class should be avoided in pregnant women?",
				Options:       []string{"Tetracyclines", "Penicillins", "Cephalosporins", "Macrolides"},
				CorrectAnswer: 0,
				Explanation:   "Tetracyclines can cause tooth discoloration and bone growth inhibition in the fetus and should be avoided during pregnancy.",
			},
			{
				Question:      "What is the target INR range for patients on warfarin for atrial fibrillation?",
				Options:       []string{"2.0-3.0", "1.0-2.0", "3.0-4.0", "4.0-5.0"},
				CorrectAnswer: 0,
				Explanation:   "The target INR range for most indications including atrial fibrillation is 2.0-3.0.",
			},
			{
				Question:      "Which medication is contraindicated with grapefruit juice?",
				Options:       []string{"Simvastatin", "Metformin", "Lisinopril", "Metoprolol"},
				CorrectAnswer: 0,
				Explanation:   "Grapefruit juice inhibits CYP3A4, significantly increasing simvastatin levels and risk of myopathy.",
			},
			{
				Question:      "What is the recommended first-line treatment for hypertension in African American patients?",
				Options:       []string{"Calcium channel blockers or thiazide diuretics", "ACE inhibitors", "Beta-blockers", "Alpha-blockers"},
				CorrectAnswer: 0,
				Explanation:   "Calcium channel blockers and thiazide diuretics are more effective in African American patients with hypertension.",
			},
			{
				Question:      "What is the antidote for acetaminophen overdose?",
				Options:       []string{"N-acetylcysteine", "Naloxone", "Flumazenil", "Activated charcoal"},
				CorrectAnswer: 0,
				Explanation:   "N-acetylcysteine (NAC) is the specific antidote for acetaminophen overdose, preventing liver damage.",
			},
			{
				Question:      "Which drug class is first-line for heart failure with reduced ejection fraction?",
				Options:       []string{"ACE inhibitors", "Calcium channel blockers", "Alpha blockers", "Nitrates"},
				CorrectAnswer: 0,
				Explanation:   "ACE inhibitors are first-line therapy for heart failure with reduced ejection fraction, improving survival.",
			},
			{
				Question:      "What is the mechanism of proton pump inhibitors?",
				Options:       []string{"Inhibit H+/K+ ATPase", "Block H2 receptors", "Neutralize acid", "Coat stomach lining"},
				CorrectAnswer: 0,
				Explanation:   "PPIs irreversibly inhibit the H+/K+ ATPase pump in gastric parietal cells, reducing acid secretion.",
			},
			{
				Question:      "Which anticoagulant requires INR monitoring?",
				Options:       []string{"Warfarin", "Rivaroxaban", "Apixaban", "Dabigatran"},
				CorrectAnswer: 0,
				Explanation:   "Warfarin requires regular INR monitoring to ensure therapeutic anticoagulation.",
			},
			{
				Question:      "What is the first-line treatment for acute asthma exacerbation?",
				Options:       []string{"Short-acting beta-agonist", "Long-acting beta-agonist", "Inhaled corticosteroid", "Leukotriene modifier"},
				CorrectAnswer: 0,
				Explanation:   "Short-acting beta-agonists (like albuterol) are first-line for acute asthma symptoms.",
			},
		},
	},
	{
		key:       "Medicinal Chemistry",
		questions: []model.Question{
			{
				Question:      "What functional group is characteristic of alcohols?",
				Options:       []string{"-OH", "-COOH", "-NH2", "-CHO"},
				CorrectAnswer: 0,
				Explanation:   "The hydroxyl group (-OH) is the characteristic functional group of alcohols.",
			},
			{
				Question:      "What is an ester?",
				Options:       []string{"R-COO-R", "R-CO-R", "R-OH", "R-NH2"},
				CorrectAnswer: 0,
				Explanation:   "An ester has the functional group R-COO-R, formed from a carboxylic acid and alcohol.",
			},
			{
				Question:      "Which element is essential in all organic compounds?",
				Options:       []string{"Carbon", "Nitrogen", "Oxygen", "Sulfur"},
				CorrectAnswer: 0,
				Explanation:   "Carbon is the essential element that defines organic chemistry and all organic compounds.",
			},
			{
				Question:      "What is a prodrug?",
				Options:       []string{"Inactive compound converted to active drug in body", "Active drug", "Drug metabolite", "Drug excipient"},
				CorrectAnswer: 0,
				Explanation:   "A prodrug is an inactive or less active compound that is metabolized in the body to produce the active drug.",
			},
			{
				Question:      "What does lipophilicity measure?",
				Options:       []string{"Affinity for lipids/fats", "Water solubility", "Protein binding", "Molecular weight"},
				CorrectAnswer: 0,
				Explanation:   "Lipophilicity measures a compound's affinity for lipid environments, important for membrane permeability.",
			},
			{
				Question:      "What is the purpose of adding a fluorine atom to drugs?",
				Options:       []string{"Increase metabolic stability", "Increase molecular weight", "Decrease activity", "Add color"},
				CorrectAnswer: 0,
				Explanation:   "Fluorine substitution often increases metabolic stability due to the strong C-F bond.",
			},
			{
				Question:      "What is an aromatic ring?",
				Options:       []string{"Cyclic structure with delocalized electrons", "Any ring structure", "Aliphatic chain", "Functional group"},
				CorrectAnswer: 0,
				Explanation:   "Aromatic rings are cyclic structures with delocalized pi electrons, like benzene.",
			},
			{
				Question:      "What is stereoisomerism?",
				Options:       []string{"Same formula, different spatial arrangement", "Different formula", "Same structure", "Different elements"},
				CorrectAnswer: 0,
				Explanation:   "Stereoisomers have the same molecular formula but different three-dimensional arrangements.",
			},
			{
				Question:      "What is a chiral center?",
				Options:       []string{"Carbon with four different groups", "Any carbon atom", "Double bond", "Ring structure"},
				CorrectAnswer: 0,
				Explanation:   "A chiral center is typically a carbon atom bonded to four different groups.",
			},
			{
				Question:      "What does SAR stand for in drug design?",
				Options:       []string{"Structure-Activity Relationship", "Systematic Analysis Report", "Standard Analytical Review", "Synthesis And Research"},
				CorrectAnswer: 0,
				Explanation:   "SAR (Structure-Activity Relationship) relates chemical structure to biological activity.",
			},
		},
	},
	{
		key:       "Pharmaceutics",
		questions: []model.Question{
			{
				Question:      "What is a tablet?",
				Options:       []string{"Solid dosage form", "Liquid dosage form", "Semi-solid dosage form", "Gaseous dosage form"},
				CorrectAnswer: 0,
				Explanation:   "A tablet is a solid dosage form containing drug and excipients compressed into a specific shape.",
			},
			{
				Question:      "What is the purpose of a coating on tablets?",
				Options:       []string{"Protect drug, improve appearance, mask taste", "Increase weight", "Reduce cost", "Speed dissolution"},
				CorrectAnswer: 0,
				Explanation:   "Tablet coatings protect the drug, improve appearance, mask unpleasant tastes, and can control release.",
			},
			{
				Question:      "What is bioavailability?",
				Options:       []string{"Fraction of drug reaching systemic circulation", "Drug potency", "Drug purity", "Drug stability"},
				CorrectAnswer: 0,
				Explanation:   "Bioavailability is the fraction of administered drug that reaches the systemic circulation unchanged.",
			},
			{
				Question:      "What is an excipient?",
				Options:       []string{"Inactive ingredient in formulation", "Active drug", "Impurity", "Preservative only"},
				CorrectAnswer: 0,
				Explanation:   "Excipients are inactive ingredients used in drug formulations to aid manufacturing and stability.",
			},
			{
				Question:      "What is dissolution?",
				Options:       []string{"Process of solid dissolving in liquid", "Drug absorption", "Drug metabolism", "Drug excretion"},
				CorrectAnswer: 0,
				Explanation:   "Dissolution is the process by which a solid drug dissolves in a liquid medium.",
			},
			{
				Question:      "What is a sustained-release formulation?",
				Options:       []string{"Releases drug slowly over time", "Immediate release", "No release", "Rapid release"},
				CorrectAnswer: 0,
				Explanation:   "Sustained-release formulations release drug gradually over an extended period.",
			},
			{
				Question:      "What is particle size reduction used for?",
				Options:       []string{"Increase dissolution rate", "Decrease dissolution", "Add color", "Reduce cost"},
				CorrectAnswer: 0,
				Explanation:   "Reducing particle size increases surface area, enhancing dissolution rate.",
			},
			{
				Question:      "What is an emulsion?",
				Options:       []string{"Mixture of immiscible liquids", "Solution", "Suspension", "Powder"},
				CorrectAnswer: 0,
				Explanation:   "An emulsion is a mixture of two immiscible liquids stabilized by an emulsifying agent.",
			},
			{
				Question:      "What is the purpose of a binder in tablets?",
				Options:       []string{"Hold ingredients together", "Speed dissolution", "Add flavor", "Preserve drug"},
				CorrectAnswer: 0,
				Explanation:   "Binders help hold tablet ingredients together during compression.",
			},
			{
				Question:      "What is lyophilization?",
				Options:       []string{"Freeze-drying process", "Wet granulation", "Coating process", "Milling process"},
				CorrectAnswer: 0,
				Explanation:   "Lyophilization (freeze-drying) removes water from products while maintaining stability.",
			},
		},
	},
	{
		key:       "Pharmacotherapy",
		questions: []model.Question{
			{
				Question:      "What is the goal of antihypertensive therapy?",
				Options:       []string{"Lower blood pressure to target range", "Cure hypertension", "Increase blood pressure", "Diagnose hypertension"},
				CorrectAnswer: 0,
				Explanation:   "Antihypertensive therapy aims to lower and maintain blood pressure within target ranges.",
			},
			{
				Question:      "What is first-line therapy for type 2 diabetes?",
				Options:       []string{"Metformin", "Insulin", "Sulfonylureas", "GLP-1 agonists"},
				CorrectAnswer: 0,
				Explanation:   "Metformin is the first-line pharmacological treatment for type 2 diabetes.",
			},
			{
				Question:      "Which drug class is used for heart failure?",
				Options:       []string{"ACE inhibitors", "Antibiotics", "Antihistamines", "Antifungals"},
				CorrectAnswer: 0,
				Explanation:   "ACE inhibitors are a cornerstone of heart failure treatment.",
			},
			{
				Question:      "What is the purpose of anticoagulants?",
				Options:       []string{"Prevent blood clots", "Dissolve clots", "Increase clotting", "Treat infections"},
				CorrectAnswer: 0,
				Explanation:   "Anticoagulants prevent the formation of blood clots.",
			},
			{
				Question:      "What is the target A1C for most diabetic patients?",
				Options:       []string{"<7%", "<5%", "<10%", "<12%"},
				CorrectAnswer: 0,
				Explanation:   "The general A1C target for most adults with diabetes is <7%.",
			},
			{
				Question:      "Which medication class treats depression?",
				Options:       []string{"Antidepressants", "Antibiotics", "Antihistamines", "Antacids"},
				CorrectAnswer: 0,
				Explanation:   "Antidepressants are used to treat depression and related mood disorders.",
			},
			{
				Question:      "What is the purpose of statins?",
				Options:       []string{"Lower cholesterol", "Lower blood sugar", "Lower blood pressure", "Treat infections"},
				CorrectAnswer: 0,
				Explanation:   "Statins are used to lower cholesterol levels and reduce cardiovascular risk.",
			},
			{
				Question:      "What is rescue therapy in asthma?",
				Options:       []string{"Quick-relief medication for acute symptoms", "Long-term control", "Prevention", "Cure"},
				CorrectAnswer: 0,
				Explanation:   "Rescue therapy provides quick relief of acute asthma symptoms.",
			},
			{
				Question:      "What is the purpose of immunosuppressants?",
				Options:       []string{"Suppress immune system", "Boost immunity", "Treat infections", "Reduce inflammation only"},
				CorrectAnswer: 0,
				Explanation:   "Immunosuppressants reduce immune system activity, used in transplants and autoimmune diseases.",
			},
			{
				Question:      "What is combination therapy?",
				Options:       []string{"Using multiple drugs together", "Single drug therapy", "No medication", "Alternative medicine"},
				CorrectAnswer: 0,
				Explanation:   "Combination therapy uses multiple medications to achieve better therapeutic outcomes.",
			},
		},
	},
	{
		key:       "Toxicology",
		questions: []model.Question{
			{
				Question:      "What is toxicology?",
				Options:       []string{"Study of poisons and their effects", "Study of drugs", "Study of plants", "Study of animals"},
				CorrectAnswer: 0,
				Explanation:   "Toxicology is the study of adverse effects of chemical substances on living organisms.",
			},
			{
				Question:      "What is an antidote?",
				Options:       []string{"Substance that counteracts poison", "Type of poison", "Preservative", "Antibiotic"},
				CorrectAnswer: 0,
				Explanation:   "An antidote is a substance that counteracts the effects of a poison or toxin.",
			},
			{
				Question:      "What does LD50 measure?",
				Options:       []string{"Lethal dose for 50% of population", "Lowest dose", "Loading dose", "Legal dose"},
				CorrectAnswer: 0,
				Explanation:   "LD50 is the dose that causes death in 50% of test subjects, measuring acute toxicity.",
			},
			{
				Question:      "What is hepatotoxicity?",
				Options:       []string{"Liver toxicity", "Kidney toxicity", "Heart toxicity", "Brain toxicity"},
				CorrectAnswer: 0,
				Explanation:   "Hepatotoxicity refers to chemical-induced liver damage.",
			},
			{
				Question:      "Which organ is primary for detoxification?",
				Options:       []string{"Liver", "Kidney", "Heart", "Lungs"},
				CorrectAnswer: 0,
				Explanation:   "The liver is the primary organ for drug metabolism and detoxification.",
			},
			{
				Question:      "What is a carcinogen?",
				Options:       []string{"Cancer-causing substance", "Pain reliever", "Antibiotic", "Vitamin"},
				CorrectAnswer: 0,
				Explanation:   "A carcinogen is any substance capable of causing cancer.",
			},
			{
				Question:      "What is nephrotoxicity?",
				Options:       []string{"Kidney toxicity", "Liver toxicity", "Heart toxicity", "Lung toxicity"},
				CorrectAnswer: 0,
				Explanation:   "Nephrotoxicity is toxic injury to the kidneys.",
			},
			{
				Question:      "What is acute toxicity?",
				Options:       []string{"Effects from single/short exposure", "Long-term effects", "No effects", "Beneficial effects"},
				CorrectAnswer: 0,
				Explanation:   "Acute toxicity refers to adverse effects from a single or short-term exposure.",
			},
			{
				Question:      "What is the antidote for acetaminophen overdose?",
				Options:       []string{"N-acetylcysteine", "Naloxone", "Atropine", "Flumazenil"},
				CorrectAnswer: 0,
				Explanation:   "N-acetylcysteine (NAC) is the specific antidote for acetaminophen overdose.",
			},
			{
				Question:      "What is teratogenicity?",
				Options:       []string{"Ability to cause birth defects", "Cancer-causing", "Liver damage", "Kidney damage"},
				CorrectAnswer: 0,
				Explanation:   "Teratogenicity is the ability of a substance to cause developmental malformations or birth defects.",
			},
		},
	},
}
