package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// DefaultRules returns the built-in rule table. Order matters: Gambling is
// tested before Food, so "bet on food delivery" lands in Gambling.
func DefaultRules() []Rule {
	return []Rule{
		{Category: model.CategoryMobileData, Keywords: []string{"data", "mtn", "glo", "airtel", "9mobile", "internet", "wifi", "bundle"}},
		{Category: model.CategoryAirtime, Keywords: []string{"airtime", "recharge", "topup", "top up", "vtu"}},
		{Category: model.CategoryShopping, Keywords: []string{"supermarket", "store", "mall", "shop", "amazon", "jumia", "konga", "market", "buy"}},
		{Category: model.CategoryHelpingOthers, Keywords: []string{"gift", "charity", "donation", "help", "support", "family", "friend"}},
		{Category: model.CategoryGambling, Keywords: []string{"bet", "bwin", "1xbet", "sporty", "lottery", "casino", "stake"}},
		{Category: model.CategoryBillPayment, Keywords: []string{"bill", "nep", "phcn", "electric", "waste", "lawma", "water", "subscription", "cable", "dstv", "gotv", "netflix"}},
		{Category: model.CategoryFood, Keywords: []string{"food", "restaurant", "eatery", "burger", "pizza", "chicken", "cafe", "coffee", "drink", "bar"}},
		{Category: model.CategoryTransport, Keywords: []string{"uber", "bolt", "taxify", "ride", "trip", "fuel", "gas", "station", "transport", "bus", "train", "flight"}},
		{Category: model.CategoryEntertainment, Keywords: []string{"movie", "cinema", "show", "concert", "game", "playstation", "steam", "spotify", "apple m"}},
		{Category: model.CategorySalary, Keywords: []string{"salary", "wage", "payroll", "income", "earning"}},
		{Category: model.CategoryTransfer, Keywords: []string{"transfer", "trf", "sent to", "received from"}},
		{Category: model.CategoryMiscellaneous, Keywords: nil},
	}
}

// rulesFile is the on-disk shape of a rules YAML document.
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads an ordered rule list from a YAML file.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	for i, r := range rf.Rules {
		if !r.Category.Valid() {
			return nil, fmt.Errorf("rule %d: unknown category %q", i+1, r.Category)
		}
	}
	return rf.Rules, nil
}

// SaveRules writes an ordered rule list to a YAML file.
func SaveRules(path string, rules []Rule) error {
	data, err := yaml.Marshal(rulesFile{Rules: rules})
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
