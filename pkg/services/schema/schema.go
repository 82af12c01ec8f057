// Package schema declares the fixed section tables that drive both the entry
// form descriptors and the document renderer. The tables are the single
// source of truth for labels, sub-field keys and grouping.
package schema

import "fmt"

// Kind distinguishes plain free-text sections from sub-field groups.
type Kind string

const (
	Plain Kind = "plain"
	Group Kind = "group"
)

// SubField is one named sub-key with its display label.
// For standard sections Key is the suffix of `f<N>_<Key>`; for the bail
// table it is the full field key.
type SubField struct {
	Key   string
	Label string
}

// Section is one numbered entry of a report table.
type Section struct {
	Number int
	// Label is the bilingual section heading. Sections 13 and 17 surface
	// only their sub rows and declare no heading.
	Label string
	Kind  Kind
	// HeaderRow marks groups that render a header row above their sub
	// rows. Groups without it show sub rows only, sharing the section
	// number across them.
	HeaderRow bool
	// Key binds the row to an exact field key. Empty means the key is
	// derived from the section number (`f<N>`).
	Key  string
	Subs []SubField
}

// FieldKey returns the direct value key for section n.
func FieldKey(n int) string { return fmt.Sprintf("f%d", n) }

// SubFieldKey returns the key for a named sub-field of section n.
func SubFieldKey(n int, sub string) string { return fmt.Sprintf("f%d_%s", n, sub) }

// Family, digital-account, document and habit sub-keys, in display order.
var (
	FamilyKeys  = []string{"Father", "Mother", "Wife", "Brother", "Sister", "ChildrenCount", "ChildrenDetail"}
	DigitalKeys = []string{"Passwd", "WhatsApp", "Signal", "FB", "Insta", "Tele", "Twitter", "Email", "Other"}
	DocKeys     = []string{"Aadhar", "PAN", "Voter", "Bank", "Passpt", "DL", "Other"}
	HabitKeys   = []string{"Cloth", "Drink", "Smoking", "Drugs", "Prostitution"}
)

func familySubs() []SubField {
	subs := make([]SubField, 0, len(FamilyKeys))
	for _, k := range FamilyKeys {
		label := k + " Detail"
		if k == "ChildrenDetail" {
			label = "Children Detail"
		}
		subs = append(subs, SubField{Key: k, Label: label})
	}
	return subs
}

func keyedSubs(keys []string, suffix string) []SubField {
	subs := make([]SubField, 0, len(keys))
	for _, k := range keys {
		subs = append(subs, SubField{Key: k, Label: k + suffix})
	}
	return subs
}

// Standard returns the fixed 39-section table shared by the entry form and
// the document renderer. E-DOSSIER and INTERROGATION REPORT both use it.
func Standard() []Section {
	sections := make([]Section, 0, 39)
	for n := 1; n <= 39; n++ {
		sections = append(sections, standardSection(n))
	}
	return sections
}

func standardSection(n int) Section {
	s := Section{Number: n, Label: standardLabels[n], Kind: Plain}
	switch n {
	case 12:
		s.Kind, s.HeaderRow = Group, true
		s.Subs = familySubs()
	case 13:
		s.Kind = Group
		s.Subs = []SubField{
			{Key: "PhotoDate", Label: "फोटाग्राफ लेने की तिथि"},
			{Key: "ChakraApp", Label: "चक्रा एप में प्रविष्टि"},
		}
	case 14:
		s.Kind, s.HeaderRow = Group, true
		s.Subs = keyedSubs(HabitKeys, "")
	case 15:
		s.Kind, s.HeaderRow = Group, true
		s.Subs = []SubField{
			{Key: "Status", Label: "वैवाहिक स्थिति"},
			{Key: "FatherInLaw", Label: "ससुर विवरणी"},
			{Key: "BrotherInLaw", Label: "साला विवरणी"},
		}
	case 17:
		s.Kind = Group
		s.Subs = []SubField{
			{Key: "Lawyer", Label: "वकील पैरोकार"},
			{Key: "Guarantor", Label: "जमानतदार विवरणी"},
		}
	case 30:
		s.Kind, s.HeaderRow = Group, true
		s.Subs = []SubField{
			{Key: "sub1", Label: "घटना का संक्षिप्त विवरण (Details of event)"},
			{Key: "sub2", Label: "घटना कारित करने का मंशा (Intention)"},
			{Key: "sub3", Label: "घटना मे संलिप्त का नाम (co-offender)"},
			{Key: "sub4", Label: "Confession की संक्षिप्त विवरणी"},
		}
	case 34:
		s.Kind, s.HeaderRow = Group, true
		s.Subs = keyedSubs(DigitalKeys, " ID/Pass")
	case 35:
		s.Kind, s.HeaderRow = Group, true
		s.Subs = keyedSubs(DocKeys, " Details")
	case 36:
		s.Kind = Group
		s.Subs = []SubField{
			{Key: "JailDetail", Label: "जेल जाने का विवरणी"},
			{Key: "EPrison", Label: "E-PRISON से प्राप्त विवरणी"},
		}
	}
	return s
}

// Bail returns the fixed five-row table for bail monitoring reports. Row 4
// nests the present-status block under a shared section number.
func Bail() []Section {
	return []Section{
		{Number: 1, Label: "नाम/उपनाम (Name/Alias)", Kind: Plain, Key: "bail_name"},
		{Number: 2, Label: "सत्यापन का दिनांक/समय (Verification Date/Time)", Kind: Plain, Key: "bail_datetime"},
		{Number: 3, Label: "जी०पी०एस० (GPS Location)", Kind: Plain, Key: "bail_gps"},
		{
			Number:    4,
			Label:     "अपराधी की वर्तमान स्थिति (Present Status)",
			Kind:      Group,
			HeaderRow: true,
			Subs: []SubField{
				{Key: "bail_living", Label: "(i) वर्तमान में कहाँ रह रहा है (Living at)"},
				{Key: "bail_occupation", Label: "(ii) व्यवसाय (Occupation)"},
				{Key: "bail_activity", Label: "(iii) आपराधिक गतिविधि (Criminal activity)"},
				{Key: "bail_income", Label: "(iv) आय का स्रोत (Means of income)"},
				{Key: "bail_other", Label: "(v) अन्य जानकारी (Other information)"},
			},
		},
		{Number: 5, Label: "सत्यापनकर्ता (Verification done by)", Kind: Plain, Key: "bail_verifier"},
	}
}

var standardLabels = map[int]string{
	1:  "नाम/उपनाम (Name/Alias)",
	2:  "पिता का नाम (Father's Name)",
	3:  "जन्म तिथि/स्थान (DOB/Place)",
	4:  "लिंग (Gender)",
	5:  "पहचान चिन्ह (Identity Mark)",
	6:  "धर्म / जाति (Religion / Caste)",
	7:  "स्थायी पता (Permanent Address)",
	8:  "वर्तमान पता (Current Address)",
	9:  "शैक्षणिक योग्यता (Educational Qual)",
	10: "भाषा (Language Proficiency)",
	11: "मोबाईल नम्बर/आई.एम.ई. (Mobile/IMEI)",
	12: "पारिवारिक विवरणी (Family Details)",
	14: "आदतें (Habits)",
	15: "वैवाहिक स्थिति (Marital Status)",
	16: "अन्य महत्वपूर्ण संबंधी (Other Relations)",
	18: "आर्थिक स्थिति (Economic Status)",
	19: "सम्पति विवरणी (Asset Details)",
	20: "वाहन विवरण (Vehicle Details)",
	21: "समाजिक प्रभाव (Social Influence)",
	22: "अपराध शैली (Modus Operandi)",
	23: "अपराध क्षेत्र (Area of Operation)",
	24: "अपराधिक इतिहास (Criminal History)",
	25: "सहयोगी विवरण (Associate Details)",
	26: "छिपने का स्थान (Hideouts)",
	27: "संरक्षणदाता (Protectors/Sponsors)",
	28: "आर्थिक सहयोगी (Financial Supporters)",
	29: "पूर्व गिरफ़्तारी की विवरणी (Criminal history)",
	30: "वर्तमान गिरफ़्तारी की विवरणी (Details of arrest)",
	31: "गिरोह का सदस्य (Gang members)",
	32: "गैंग के सदस्यों का आगामी आपराधिक योजना (Future planning of gang)",
	33: "गैंग के पास किस प्रकार का हथियार है (Types of weapon gang have)",
	34: "तकनिकी ज्ञान (Digital Details)",
	35: "दस्तावेज (Docs)",
	36: "जेल विवरणी (Jail Details)",
	37: "अन्य महत्वपूर्ण जानकारी",
	38: "INTERROGATION REPORT",
	39: "Team Detail / Sign",
}
