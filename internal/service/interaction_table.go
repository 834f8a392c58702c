package service

import "pharmacademy/internal/model"

type knownInteraction struct {
	severity       model.Severity
	description    string
	recommendation string
}

// knownInteractions is keyed by the lower-cased pair "a-b"; lookups try both orders
var knownInteractions = map[string]knownInteraction{
	"aspirin-warfarin": {
		severity:       model.SeverityHigh,
		description:    "Increased risk of bleeding. Both drugs affect blood clotting mechanisms.",
		recommendation: "Avoid combination if possible. If necessary, monitor INR closely and watch for signs of bleeding.",
	},
	"aspirin-ibuprofen": {
		severity:       model.SeverityModerate,
		description:    "Ibuprofen may reduce the cardioprotective effects of low-dose aspirin.",
		recommendation: "Take ibuprofen at least 2 hours after or 8 hours before aspirin.",
	},
	"warfarin-metformin": {
		severity:       model.SeverityLow,
		description:    "Minimal interaction. Metformin may slightly enhance anticoagulant effect.",
		recommendation: "Monitor INR when starting or stopping metformin.",
	},
	"warfarin-simvastatin": {
		severity:       model.SeverityModerate,
		description:    "Simvastatin may enhance the anticoagulant effect of warfarin.",
		recommendation: "Monitor INR closely when starting or adjusting simvastatin dose.",
	},
	"warfarin-amoxicillin": {
		severity:       model.SeverityModerate,
		description:    "Antibiotics may alter gut flora affecting vitamin K production, potentially increasing INR.",
		recommendation: "Monitor INR more frequently during and after antibiotic therapy.",
	},
	"clopidogrel-omeprazole": {
		severity:       model.SeverityHigh,
		description:    "Omeprazole inhibits CYP2C19, reducing clopidogrel activation and antiplatelet effect.",
		recommendation: "Consider using pantoprazole instead of omeprazole if PPI needed.",
	},
	"digoxin-furosemide": {
		severity:       model.SeverityModerate,
		description:    "Furosemide-induced hypokalemia increases risk of digoxin toxicity.",
		recommendation: "Monitor potassium levels and digoxin levels regularly. Consider potassium supplementation.",
	},
	"metformin-lisinopril": {
		severity:       model.SeverityLow,
		description:    "ACE inhibitors may enhance hypoglycemic effect of metformin.",
		recommendation: "Monitor blood glucose, especially when initiating therapy.",
	},
	"simvastatin-diltiazem": {
		severity:       model.SeverityModerate,
		description:    "Diltiazem inhibits CYP3A4, increasing simvastatin levels and risk of myopathy.",
		recommendation: "Limit simvastatin dose to 10mg daily when used with diltiazem.",
	},
	"atorvastatin-clarithromycin": {
		severity:       model.SeverityHigh,
		description:    "Clarithromycin significantly increases statin levels, increasing risk of rhabdomyolysis.",
		recommendation: "Consider temporarily discontinuing statin during clarithromycin therapy.",
	},
	"lisinopril-spironolactone": {
		severity:       model.SeverityModerate,
		description:    "Both drugs can increase potassium levels, risk of hyperkalemia.",
		recommendation: "Monitor serum potassium and renal function regularly.",
	},
	"metoprolol-verapamil": {
		severity:       model.SeverityHigh,
		description:    "Both drugs slow heart rate and AV conduction, risk of severe bradycardia and heart block.",
		recommendation: "Avoid combination. If necessary, monitor ECG and heart rate closely.",
	},
	"fluoxetine-tramadol": {
		severity:       model.SeverityHigh,
		description:    "Increased risk of serotonin syndrome. Both drugs increase serotonin levels.",
		recommendation: "Avoid combination if possible. Monitor for serotonin syndrome symptoms.",
	},
	"sertraline-aspirin": {
		severity:       model.SeverityModerate,
		description:    "SSRIs may increase bleeding risk when combined with antiplatelet agents.",
		recommendation: "Monitor for signs of bleeding. Consider gastroprotection.",
	},
	"lithium-hydrochlorothiazide": {
		severity:       model.SeverityHigh,
		description:    "Thiazide diuretics reduce lithium clearance, increasing risk of toxicity.",
		recommendation: "Monitor lithium levels closely. May need to reduce lithium dose by 50%.",
	},
	"phenytoin-valproic acid": {
		severity:       model.SeverityModerate,
		description:    "Complex interaction affecting levels of both drugs.",
		recommendation: "Monitor levels of both drugs and adjust doses accordingly.",
	},
	"theophylline-ciprofloxacin": {
		severity:       model.SeverityHigh,
		description:    "Ciprofloxacin inhibits theophylline metabolism, increasing toxicity risk.",
		recommendation: "Reduce theophylline dose by 50% and monitor levels closely.",
	},
	"methotrexate-trimethoprim": {
		severity:       model.SeverityHigh,
		description:    "Both drugs are folate antagonists, increased risk of bone marrow suppression.",
		recommendation: "Avoid combination. If necessary, monitor CBC closely.",
	},
	"allopurinol-azathioprine": {
		severity:       model.SeverityHigh,
		description:    "Allopurinol inhibits azathioprine metabolism, increasing toxicity risk.",
		recommendation: "Reduce azathioprine dose to 25% of usual dose.",
	},
	"ketoconazole-simvastatin": {
		severity:       model.SeverityHigh,
		description:    "Ketoconazole significantly increases statin levels via CYP3A4 inhibition.",
		recommendation: "Avoid combination. Consider alternative antifungal or statin.",
	},
}
