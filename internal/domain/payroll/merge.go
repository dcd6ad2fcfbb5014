package payroll

// MergeStructure applies an incoming submission onto the stored structure.
// Every scalar is overwritten except ProvidentFund, which only the insert
// branch can set; an update leaves the stored value untouched. Both store
// implementations share this rule.
func MergeStructure(existing, incoming Structure) Structure {
	merged := existing
	merged.Basic = incoming.Basic
	merged.HRA = incoming.HRA
	merged.SpecialAllowance = incoming.SpecialAllowance
	merged.GrossEarnings = incoming.GrossEarnings
	merged.ProfessionalTax = incoming.ProfessionalTax
	merged.NetSalary = incoming.NetSalary
	return merged
}
