// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package airframe

import (
	"fmt"
	"math"

	"github.com/cadolab/oadkit/internal/earth"
	"github.com/cadolab/oadkit/internal/model"
	"github.com/cadolab/oadkit/internal/solver"
)

// Rating identifies an engine operating point.
type Rating string

// Engine ratings: max take off, max continuous, max climb, max cruise
// and flight idle.
const (
	RatingMTO Rating = "MTO"
	RatingMCN Rating = "MCN"
	RatingMCL Rating = "MCL"
	RatingMCR Rating = "MCR"
	RatingFID Rating = "FID"
)

// Thrust is the output of a unitary thrust evaluation (one engine).
type Thrust struct {
	FN       float64 // N
	FuelFlow float64 // kg/s, zero for electric chains
	Power    float64 // W, shaft power input for electric chains
}

// Consumption is the output of a unitary consumption evaluation.
type Consumption struct {
	SFC      float64 // kg/s/N, thermal chains
	SEC      float64 // W/N, electric chains
	Throttle float64
	Power    float64 // W
}

// Nacelle abstracts the propulsion component of the airframe.
type Nacelle interface {
	Component
	EngineCount() int
	ReferenceThrust() float64
	Dimensions() (width, length float64)
	UnitaryThrust(pamb, tamb, mach float64, rating Rating, throttle, pwOfftake float64) (Thrust, error)
	UnitaryConsumption(pamb, tamb, mach float64, rating Rating, thrust, pwOfftake float64) (Consumption, error)
}

// locateNacelle positions the nacelle bank according to the attachment.
// The inboard position is the reference one; the outboard position only
// exists for four-engine arrangements.
func locateNacelle(af *Airframe, attachment string, width, length float64, outboard bool) (Vec3, error) {
	switch attachment {
	case "wing":
		w := af.Wing
		bodyWidth := af.Fuselage.Width
		tanPhi0 := 0.25*(w.CKink-w.CTip)/(w.LocTip[1]-w.LocKink[1]) + math.Tan(w.Sweep25)

		span := 0.6*bodyWidth + 1.5*width // statistical regression
		if outboard {
			span = 1.8*bodyWidth + 1.5*width
		}
		x := w.LocRoot[0] + (span-w.LocRoot[1])*tanPhi0 - 0.7*length
		z := (span-0.5*bodyWidth)*math.Tan(w.Dihedral) - 0.5*width
		return Vec3{x, span, z}, nil
	case "rear":
		bodyWidth := af.Fuselage.Width
		bodyHeight := af.Fuselage.Height
		y := 0.5*bodyWidth + 0.6*width // statistical regression
		x := af.VerticalStab.LocRoot[0] - 0.5*length
		return Vec3{x, y, bodyHeight}, nil
	default:
		return Vec3{}, fmt.Errorf("airframe: nacelle attachment %q is unknown", attachment)
	}
}

// locateNacelleBank resolves inboard and outboard pod positions. With
// less than four engines both positions collapse on the inboard one.
func locateNacelleBank(af *Airframe, attachment string, width, length float64, nEngine int) (inboard, outboard Vec3, err error) {
	inboard, err = locateNacelle(af, attachment, width, length, false)
	if err != nil {
		return Vec3{}, Vec3{}, err
	}
	if attachment == "wing" && 2 < nEngine {
		outboard, err = locateNacelle(af, attachment, width, length, true)
		if err != nil {
			return Vec3{}, Vec3{}, err
		}
		return inboard, outboard, nil
	}
	return inboard, inboard, nil
}

// turbofanBPR picks the bypass ratio by airplane size class.
func turbofanBPR(nPaxRef float64) float64 {
	if 80. < nPaxRef {
		return 9.
	}
	return 5.
}

// TurbofanNacelle is the semi-empirical turbofan model. The reference
// thrust is defined by thrust(mach 0.25, sea level, disa 15) / 0.80.
type TurbofanNacelle struct {
	base

	nEngine          int
	referenceThrust  float64
	ReferenceOfftake float64
	RatingFactor     map[Rating]float64
	FuelHeat         float64
	TuneFactor       float64
	EngineBPR        float64
	CoreThrustRatio  float64
	EfficiencyProp   float64

	Width  float64
	Length float64

	// LocOutboard is the outboard pod position of a four-engine wing
	// arrangement; it equals FrameOrigin otherwise.
	LocOutboard Vec3

	arr model.Arrangement
	req model.Requirement
}

// NewTurbofanNacelle sizes the reference thrust from the payload-range
// product and seeds the semi-empirical constants.
func NewTurbofanNacelle(req model.Requirement, arr model.Arrangement, nEngine int) *TurbofanNacelle {
	return &TurbofanNacelle{
		nEngine:         nEngine,
		referenceThrust: (1.e5 + 177.*req.NPaxRef*req.DesignRange*1.e-6) / float64(nEngine),
		RatingFactor: map[Rating]float64{
			RatingMTO: 1.00, RatingMCN: 0.86, RatingMCL: 0.78, RatingMCR: 0.70, RatingFID: 0.10,
		},
		TuneFactor:      1.,
		EngineBPR:       turbofanBPR(req.NPaxRef),
		CoreThrustRatio: 0.13,
		EfficiencyProp:  0.82,
		arr:             arr,
		req:             req,
	}
}

func (n *TurbofanNacelle) EngineCount() int         { return n.nEngine }
func (n *TurbofanNacelle) ReferenceThrust() float64 { return n.referenceThrust }
func (n *TurbofanNacelle) Dimensions() (float64, float64) {
	return n.Width, n.Length
}

// EvalGeometry calibrates the tune factor at the reference condition and
// sizes the pod. Power offtaken to drive an electric chain shrinks the
// fan and hence the nacelle.
func (n *TurbofanNacelle) EvalGeometry(af *Airframe) error {
	fh, err := earth.FuelHeat(n.arr.EnergySource)
	if err != nil {
		return err
	}
	n.FuelHeat = fh

	const (
		mach = 0.25
		disa = 15.
		altp = 0.
	)
	pamb, tamb, _, _, err := earth.Atmosphere(altp, disa)
	if err != nil {
		return err
	}
	vair := mach * earth.SoundSpeed(tamb)

	// tune_factor aligns unitary thrust with the reference thrust definition.
	n.TuneFactor = 1.
	th, err := n.UnitaryThrust(pamb, tamb, mach, RatingMTO, 1., 0.)
	if err != nil {
		return err
	}
	n.TuneFactor = n.referenceThrust / (th.FN / 0.80)

	totalThrust0 := n.referenceThrust * 0.80
	coreThrust0 := totalThrust0 * n.CoreThrustRatio
	fanThrust0 := totalThrust0 * (1. - n.CoreThrustRatio)
	fanPower0 := fanThrust0 * vair / n.EfficiencyProp

	// Total offtake is split over all engines.
	fanPower := fanPower0 - n.ReferenceOfftake*float64(n.nEngine)
	fanThrust := (fanPower / vair) * n.EfficiencyProp
	totalThrust := fanThrust + coreThrust0

	thrustFactor := totalThrust / totalThrust0

	n.Width = 0.5*math.Pow(n.EngineBPR, 0.7) + 5.e-6*n.referenceThrust*thrustFactor
	n.Length = 0.86*n.Width + math.Pow(n.EngineBPR, 0.37) // statistical regression

	knac := math.Pi * n.Width * n.Length
	n.grossWetArea = knac * (1.48 - 0.0076*knac) * float64(n.nEngine) // all engines
	n.netWetArea = n.grossWetArea
	n.aeroLength = n.Length
	n.formFactor = 1.15

	n.FrameOrigin, n.LocOutboard, err = locateNacelleBank(af, n.arr.NacelleAttachment, n.Width, n.Length, n.nEngine)
	return err
}

// EvalMass applies the thrust regressions for engines and pylons.
func (n *TurbofanNacelle) EvalMass(af *Airframe) error {
	engineMass := (1250. + 0.021*n.referenceThrust) * float64(n.nEngine)
	pylonMass := 0.0031 * n.referenceThrust * float64(n.nEngine)
	n.mass = engineMass + pylonMass
	pod := n.FrameOrigin.Scale(0.5).Add(n.LocOutboard.Scale(0.5))
	n.cg = pod.Add(Vec3{0.7 * n.Length, 0., 0.})
	return nil
}

// UnitaryThrust evaluates one engine with the semi-empirical model.
func (n *TurbofanNacelle) UnitaryThrust(pamb, tamb, mach float64, rating Rating, throttle, pwOfftake float64) (Thrust, error) {
	kf, ok := n.RatingFactor[rating]
	if !ok {
		return Thrust{}, fmt.Errorf("airframe: engine rating %q is unknown", rating)
	}

	bpr10 := n.EngineBPR / 10.
	kth := 0.475*mach*mach + 0.091*bpr10*bpr10 -
		0.283*mach*bpr10 -
		0.633*mach - 0.081*bpr10 + 1.192

	_, sig := earth.AirDensity(pamb, tamb)
	vair := mach * earth.SoundSpeed(tamb)

	totalThrust0 := n.referenceThrust * n.TuneFactor * kth * kf * throttle * math.Pow(sig, 0.75)
	coreThrust0 := totalThrust0 * n.CoreThrustRatio
	fanThrust0 := totalThrust0 * (1. - n.CoreThrustRatio)
	fanPower0 := fanThrust0 * vair / n.EfficiencyProp // available shaft power for one engine

	fanPower := fanPower0 - pwOfftake
	fanThrust := (fanPower / vair) * n.EfficiencyProp
	totalThrust := fanThrust + coreThrust0

	sfcRef := (0.4 + 1./math.Pow(n.EngineBPR, 0.895)) / 36000.
	fuelFlow := sfcRef * totalThrust0

	return Thrust{FN: totalThrust, FuelFlow: fuelFlow}, nil
}

// UnitaryConsumption evaluates the specific fuel consumption and the
// throttle needed to hold a thrust.
func (n *TurbofanNacelle) UnitaryConsumption(pamb, tamb, mach float64, rating Rating, thrust, pwOfftake float64) (Consumption, error) {
	th, err := n.UnitaryThrust(pamb, tamb, mach, rating, 1., pwOfftake)
	if err != nil {
		return Consumption{}, err
	}
	return Consumption{
		SFC:      th.FuelFlow / th.FN,
		Throttle: thrust / th.FN,
	}, nil
}

// ElectrofanNacelle is the semi-empirical electric fan model. The fan
// and nozzle are sized by the cruise condition, thrust off-design comes
// from matching the swallowed air flow with the nozzle flow.
type ElectrofanNacelle struct {
	base

	nEngine         int
	ReferencePower  float64
	referenceThrust float64
	RatingFactor    map[Rating]float64
	TuneFactor      float64

	EfficiencyFan        float64
	EfficiencyProp       float64
	MotorEfficiency      float64
	ControllerEfficiency float64
	ControllerPwDensity  float64 // W/kg
	NacellePwDensity     float64 // W/kg
	MotorPwDensity       float64 // W/kg

	HubWidth    float64
	FanWidth    float64
	NozzleWidth float64
	NozzleArea  float64
	Width       float64
	Length      float64

	// LocOutboard is the outboard pod position of a four-engine wing
	// arrangement; it equals FrameOrigin otherwise.
	LocOutboard Vec3

	arr model.Arrangement
	req model.Requirement
}

// NewElectrofanNacelle sizes the reference power from the equivalent
// turbofan reference thrust.
func NewElectrofanNacelle(req model.Requirement, arr model.Arrangement, nEngine int) *ElectrofanNacelle {
	refPower := (1. / 0.8) * (87.26 / 0.82) * (1.e5 + 177.*req.NPaxRef*req.DesignRange*1.e-6) / float64(nEngine)
	return &ElectrofanNacelle{
		nEngine:         nEngine,
		ReferencePower:  refPower,
		referenceThrust: refPower * (0.82 / 87.26),
		RatingFactor: map[Rating]float64{
			RatingMTO: 1.00, RatingMCN: 0.90, RatingMCL: 0.90, RatingMCR: 0.90, RatingFID: 0.10,
		},
		TuneFactor:           1.,
		EfficiencyFan:        0.95,
		EfficiencyProp:       0.82,
		MotorEfficiency:      0.95,
		ControllerEfficiency: 0.99,
		ControllerPwDensity:  20.e3,
		NacellePwDensity:     5.e3,
		MotorPwDensity:       10.e3,
		HubWidth:             0.20,
		arr:                  arr,
		req:                  req,
	}
}

func (n *ElectrofanNacelle) EngineCount() int         { return n.nEngine }
func (n *ElectrofanNacelle) ReferenceThrust() float64 { return n.referenceThrust }
func (n *ElectrofanNacelle) Dimensions() (float64, float64) {
	return n.Width, n.Length
}

// EvalGeometry designs the fan for max cruise in cruise condition, then
// recovers the reference thrust at the take off reference point.
func (n *ElectrofanNacelle) EvalGeometry(af *Airframe) error {
	pamb, tamb, _, _, err := earth.Atmosphere(n.req.CruiseAltp, n.req.CruiseDisa)
	if err != nil {
		return err
	}
	shaftPower := n.ReferencePower * n.RatingFactor[RatingMCR]
	if err := n.designFan(pamb, tamb, n.req.CruiseMach, shaftPower); err != nil {
		return err
	}

	n.aeroLength = n.Length
	n.formFactor = 1.15

	n.FrameOrigin, n.LocOutboard, err = locateNacelleBank(af, n.arr.NacelleAttachment, n.Width, n.Length, n.nEngine)
	if err != nil {
		return err
	}

	// Reference thrust is defined by thrust(mach 0.25, sea level, disa 15) / 0.80.
	pamb, tamb, _, _, err = earth.Atmosphere(0., 15.)
	if err != nil {
		return err
	}
	th, err := n.UnitaryThrust(pamb, tamb, 0.25, RatingMTO, 1., 0.)
	if err != nil {
		return err
	}
	n.referenceThrust = th.FN / 0.80
	return nil
}

// EvalMass applies the power density regressions of the electric chain.
func (n *ElectrofanNacelle) EvalMass(af *Airframe) error {
	engineMass := (1./n.ControllerPwDensity + 1./n.MotorPwDensity + 1./n.NacellePwDensity) *
		n.ReferencePower * float64(n.nEngine)
	pylonMass := 0.0031 * n.referenceThrust * float64(n.nEngine)
	n.mass = engineMass + pylonMass
	pod := n.FrameOrigin.Scale(0.5).Add(n.LocOutboard.Scale(0.5))
	n.cg = pod.Add(Vec3{0.7 * n.Length, 0., 0.})
	return nil
}

// designFan sizes fan and nozzle diameters from the design shaft power
// using the corrected air flow relations.
func (n *ElectrofanNacelle) designFan(pamb, tamb, mach, shaftPower float64) error {
	r, gam, cp, _ := earth.GasData()
	vair := mach * earth.SoundSpeed(tamb)

	// Speed variation produced by the fan.
	deltaV := 2. * vair * (n.EfficiencyFan/n.EfficiencyProp - 1.)

	pwInput := n.EfficiencyFan * shaftPower // kinetic energy produced by the fan

	vInlet := vair
	vJet := vInlet + deltaV
	q1 := 2. * pwInput / (vJet*vJet - vInlet*vInlet)

	machInlet := mach // the inlet is in free stream
	ptot := earth.TotalPressure(pamb, machInlet)
	ttot := earth.TotalTemperature(tamb, machInlet)

	const machFan = 0.5 // required Mach number at fan position
	cqoa1 := correctedAirFlow(ptot, ttot, machFan)

	fanArea := q1 / cqoa1
	fanWidth := math.Sqrt(n.HubWidth*n.HubWidth + 4.*fanArea/math.Pi)

	ttotJet := ttot + shaftPower/(q1*cp) // stagnation temperature rises with the work introduced
	tstat := ttotJet - 0.5*vJet*vJet/cp

	vsndJet := math.Sqrt(gam * r * tstat)
	machJet := vJet / vsndJet
	ptotJet := earth.TotalPressure(pamb, machJet) // total pressure at nozzle exhaust (P = pamb)

	cqoa2 := correctedAirFlow(ptotJet, ttotJet, machJet)
	nozzleArea := q1 / cqoa2
	nozzleWidth := math.Sqrt(4. * nozzleArea / math.Pi)

	n.FanWidth = fanWidth
	n.NozzleWidth = nozzleWidth
	n.NozzleArea = nozzleArea

	n.Width = 1.20 * fanWidth // surrounding structure
	n.Length = 1.50 * n.Width

	n.grossWetArea = math.Pi * n.Width * n.Length * float64(n.nEngine)
	n.netWetArea = n.grossWetArea
	return nil
}

// correctedAirFlow computes the corrected air flow per square meter.
func correctedAirFlow(ptot, ttot, mach float64) float64 {
	r, gam, _, _ := earth.GasData()
	fM := mach * math.Pow(1.+0.5*(gam-1.)*mach*mach, -(gam+1.)/(2.*(gam-1.)))
	return (math.Sqrt(gam/r) * ptot / math.Sqrt(ttot)) * fM
}

// UnitaryThrust evaluates one electrofan by matching the air flow
// swallowed by the inlet with the nozzle flow.
func (n *ElectrofanNacelle) UnitaryThrust(pamb, tamb, mach float64, rating Rating, throttle, pwOfftake float64) (Thrust, error) {
	kf, ok := n.RatingFactor[rating]
	if !ok {
		return Thrust{}, fmt.Errorf("airframe: engine rating %q is unknown", rating)
	}
	_, _, cp, _ := earth.GasData()

	pwInput := n.ReferencePower*kf*throttle - pwOfftake
	pwShaft := pwInput * n.MotorEfficiency * n.ControllerEfficiency

	ptot := earth.TotalPressure(pamb, mach)
	ttot := earth.TotalTemperature(tamb, mach)
	vair := mach * earth.SoundSpeed(tamb)

	residual := func(x []float64) ([]float64, error) {
		q := x[0]
		vInlet := vair
		pw := n.EfficiencyFan * pwShaft
		vJet := math.Sqrt(2.*pw/q + vInlet*vInlet) // supposing isentropic compression
		ttotJet := ttot + pwShaft/(q*cp)
		tstatJet := ttotJet - 0.5*vJet*vJet/cp
		vsndJet := earth.SoundSpeed(tstatJet)
		machJet := vJet / vsndJet
		ptotJet := earth.TotalPressure(pamb, machJet)
		cqoa := correctedAirFlow(ptotJet, ttotJet, machJet)
		q0 := cqoa * n.NozzleArea
		return []float64{q0 - q}, nil
	}

	cqoa0 := correctedAirFlow(ptot, ttot, mach)
	q0init := cqoa0 * (0.25 * math.Pi * n.FanWidth * n.FanWidth)

	sol, err := solver.Solve(residual, []float64{q0init}, solver.Options{})
	if err != nil {
		return Thrust{}, fmt.Errorf("airframe: electrofan air flow matching: %w", err)
	}
	q0 := sol[0]

	vInlet := vair
	pw := n.EfficiencyFan * pwShaft
	vJet := math.Sqrt(2.*pw/q0 + vInlet*vInlet)
	fn := q0 * (vJet - vInlet)

	return Thrust{FN: fn, Power: pwInput}, nil
}

// UnitaryConsumption evaluates the power required to hold a thrust by
// solving air flow and shaft power together.
func (n *ElectrofanNacelle) UnitaryConsumption(pamb, tamb, mach float64, rating Rating, thrust, pwOfftake float64) (Consumption, error) {
	kf, ok := n.RatingFactor[rating]
	if !ok {
		return Consumption{}, fmt.Errorf("airframe: engine rating %q is unknown", rating)
	}
	_, _, cp, _ := earth.GasData()

	ptot := earth.TotalPressure(pamb, mach)
	ttot := earth.TotalTemperature(tamb, mach)
	vair := mach * earth.SoundSpeed(tamb)

	residual := func(x []float64) ([]float64, error) {
		q, pwShaft := x[0], x[1]
		vInlet := vair
		pw := n.EfficiencyFan * pwShaft
		vJet := math.Sqrt(2.*pw/q + vInlet*vInlet)
		ttotJet := ttot + pwShaft/(q*cp)
		tstatJet := ttotJet - 0.5*vJet*vJet/cp
		vsndJet := earth.SoundSpeed(tstatJet)
		machJet := vJet / vsndJet
		ptotJet := earth.TotalPressure(pamb, machJet)
		cqoa := correctedAirFlow(ptotJet, ttotJet, machJet)
		q0 := cqoa * n.NozzleArea
		fn := q * (vJet - vInlet)
		return []float64{q0 - q, thrust - fn}, nil
	}

	cqoa0 := correctedAirFlow(ptot, ttot, mach)
	q0init := cqoa0 * (0.25 * math.Pi * n.FanWidth * n.FanWidth)
	pwInit := (n.ReferencePower*kf - pwOfftake) * n.MotorEfficiency * n.ControllerEfficiency

	sol, err := solver.Solve(residual, []float64{q0init, pwInit}, solver.Options{})
	if err != nil {
		return Consumption{}, fmt.Errorf("airframe: electrofan power matching: %w", err)
	}
	q0, pw := sol[0], sol[1]

	vInlet := vair
	pwFan := n.EfficiencyFan * pw
	vJet := math.Sqrt(2.*pwFan/q0 + vInlet*vInlet)
	fn := q0 * (vJet - vInlet)

	return Consumption{
		SEC:      pw / fn,
		Power:    pw,
		Throttle: (pw + pwOfftake) / (n.ReferencePower * kf),
	}, nil
}
