// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package earth

import (
	"math"
	"testing"
)

func TestAtmosphereSeaLevel(t *testing.T) {
	pamb, tamb, tstd, dtodz, err := Atmosphere(0., 0.)
	if err != nil {
		t.Fatalf("Atmosphere failed: %v", err)
	}
	if pamb != 101325. {
		t.Fatalf("sea level pressure = %v, want 101325", pamb)
	}
	if tamb != 288.15 || tstd != 288.15 {
		t.Fatalf("sea level temperature = %v/%v, want 288.15", tamb, tstd)
	}
	if dtodz != -0.0065 {
		t.Fatalf("troposphere gradient = %v, want -0.0065", dtodz)
	}
}

func TestAtmosphereCruise(t *testing.T) {
	// ISA at 11 km: 216.65 K, 22632 Pa.
	pamb, tamb, _, _, err := Atmosphere(11000., 0.)
	if err != nil {
		t.Fatalf("Atmosphere failed: %v", err)
	}
	if math.Abs(tamb-216.65) > 0.01 {
		t.Fatalf("tropopause temperature = %v, want 216.65", tamb)
	}
	if math.Abs(pamb-22632.)/22632. > 0.001 {
		t.Fatalf("tropopause pressure = %v, want about 22632", pamb)
	}
}

func TestAtmosphereDisa(t *testing.T) {
	_, tamb, tstd, _, err := Atmosphere(10668., 15.)
	if err != nil {
		t.Fatalf("Atmosphere failed: %v", err)
	}
	if math.Abs(tamb-tstd-15.) > 1e-9 {
		t.Fatalf("disa shift = %v, want 15", tamb-tstd)
	}
}

func TestAtmosphereCeiling(t *testing.T) {
	if _, _, _, _, err := Atmosphere(60000., 0.); err == nil {
		t.Fatal("expected error above the model ceiling")
	}
	if _, _, _, _, err := Atmosphere(50000.1, 0.); err == nil {
		t.Fatal("expected error just above the model ceiling")
	}
}

func TestAtmosphereTopOfModel(t *testing.T) {
	// 50 km exactly is the last valid altitude. The top layer is
	// isothermal at 270.65 K from 47 km up.
	pamb, _, tstd, dtodz, err := Atmosphere(50000., 0.)
	if err != nil {
		t.Fatalf("Atmosphere failed at the model ceiling: %v", err)
	}
	if math.Abs(tstd-270.65) > 0.01 {
		t.Fatalf("top of model temperature = %v, want 270.65", tstd)
	}
	if dtodz != 0. {
		t.Fatalf("top layer gradient = %v, want 0", dtodz)
	}
	pambBelow, _, _, _, err := Atmosphere(47000., 0.)
	if err != nil {
		t.Fatalf("Atmosphere failed at 47 km: %v", err)
	}
	if pamb <= 0. || pambBelow <= pamb {
		t.Fatalf("pressure not decreasing to the ceiling: %v at 47 km, %v at 50 km", pambBelow, pamb)
	}
}

func TestSoundSpeed(t *testing.T) {
	// 340.3 m/s at sea level standard.
	got := SoundSpeed(288.15)
	if math.Abs(got-340.3) > 0.1 {
		t.Fatalf("SoundSpeed(288.15) = %v, want about 340.3", got)
	}
}

func TestAirDensity(t *testing.T) {
	rho, sig := AirDensity(101325., 288.15)
	if math.Abs(rho-1.225) > 0.001 {
		t.Fatalf("sea level density = %v, want about 1.225", rho)
	}
	if math.Abs(sig-1.) > 1e-9 {
		t.Fatalf("sea level sigma = %v, want 1", sig)
	}
}

func TestStagnationRelations(t *testing.T) {
	// At Mach 0 total equals static.
	if got := TotalPressure(101325., 0.); got != 101325. {
		t.Fatalf("TotalPressure at M0 = %v", got)
	}
	if got := TotalTemperature(288.15, 0.); got != 288.15 {
		t.Fatalf("TotalTemperature at M0 = %v", got)
	}
	// Total values grow with Mach.
	if TotalPressure(101325., 0.8) <= 101325. {
		t.Fatal("TotalPressure should grow with Mach")
	}
	if TotalTemperature(288.15, 0.8) <= 288.15 {
		t.Fatal("TotalTemperature should grow with Mach")
	}
}

func TestFuelProperties(t *testing.T) {
	for _, src := range []EnergySource{Kerosene, Methane, LiquidH2, Battery} {
		if _, err := FuelHeat(src); err != nil {
			t.Fatalf("FuelHeat(%s) failed: %v", src, err)
		}
		if _, err := FuelDensity(src); err != nil {
			t.Fatalf("FuelDensity(%s) failed: %v", src, err)
		}
	}
	if _, err := FuelHeat(EnergySource("coal")); err == nil {
		t.Fatal("expected error for unknown energy source")
	}
	heatKerosene, _ := FuelHeat(Kerosene)
	heatH2, _ := FuelHeat(LiquidH2)
	if heatH2 <= heatKerosene {
		t.Fatal("hydrogen heating value should exceed kerosene")
	}
}
