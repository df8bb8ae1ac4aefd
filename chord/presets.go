package chord

var (
	MajorTriad      = Type{Third: MajorThird}
	MinorTriad      = Type{Third: MinorThird}
	DiminishedTriad = Type{Third: MinorThird, Fifth: DiminishedFifth}
	AugmentedTriad  = Type{Third: MajorThird, Fifth: AugmentedFifth}

	Dominant7      = Type{Third: MajorThird, Seventh: DominantSeventh}
	Major7         = Type{Third: MajorThird, Seventh: MajorSeventh}
	Minor7         = Type{Third: MinorThird, Seventh: DominantSeventh}
	MinorMajor7    = Type{Third: MinorThird, Seventh: MajorSeventh}
	HalfDiminished = Type{Third: MinorThird, Fifth: DiminishedFifth, Seventh: DominantSeventh}
	Diminished7    = Type{Third: MinorThird, Fifth: DiminishedFifth, Seventh: DiminishedSeventh}
	Augmented7     = Type{Third: MajorThird, Fifth: AugmentedFifth, Seventh: DominantSeventh}

	Dominant9  = Dominant7.With(Extension{Degree: Ninth})
	Major9     = Major7.With(Extension{Degree: Ninth})
	Minor9     = Minor7.With(Extension{Degree: Ninth})
	Dominant11 = Dominant9.With(Extension{Degree: Eleventh})
	Minor11    = Minor9.With(Extension{Degree: Eleventh})
	Dominant13 = Dominant11.With(Extension{Degree: Thirteenth})
	Major13    = Major9.With(Extension{Degree: Eleventh, Accidental: Sharp}, Extension{Degree: Thirteenth})
)

// Named is the catalogue of common chord types.
var Named = []Type{
	MajorTriad, MinorTriad, DiminishedTriad, AugmentedTriad,
	Dominant7, Major7, Minor7, MinorMajor7, HalfDiminished, Diminished7, Augmented7,
	Dominant9, Major9, Minor9, Dominant11, Minor11, Dominant13, Major13,
}

// With returns a copy of t with the extensions added.
func (t Type) With(exts ...Extension) Type {
	res := t
	res.Extensions = append(append([]Extension(nil), t.Extensions...), exts...)
	return res
}
