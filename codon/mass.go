package codon

import "fmt"

// monoisotopicMass stores the monoisotopic mass of each amino acid
// residue, in daltons.
var monoisotopicMass = map[byte]float64{
	'A': 71.03711,
	'C': 103.00919,
	'D': 115.02694,
	'E': 129.04259,
	'F': 147.06841,
	'G': 57.02146,
	'H': 137.05891,
	'I': 113.08406,
	'K': 128.09496,
	'L': 113.08406,
	'M': 131.04049,
	'N': 114.04293,
	'P': 97.05276,
	'Q': 128.05858,
	'R': 156.10111,
	'S': 87.03203,
	'T': 101.04768,
	'V': 99.06841,
	'W': 186.07931,
	'Y': 163.06333,
}

// Mass returns the monoisotopic mass of a single amino acid residue.
func Mass(aa byte) (float64, error) {
	m, ok := monoisotopicMass[aa]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAminoAcid, aa)
	}
	return m, nil
}

// ProteinMass returns the total monoisotopic mass of a protein chain.
func ProteinMass(protein string) (float64, error) {
	var total float64
	for i := 0; i < len(protein); i++ {
		m, err := Mass(protein[i])
		if err != nil {
			return 0, err
		}
		total += m
	}
	return total, nil
}
