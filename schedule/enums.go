package schedule

import "strings"

// BankHolidayRunning describes whether a schedule runs on bank holiday
// Mondays.
type BankHolidayRunning int

const (
	RunsNormally BankHolidayRunning = iota
	NotOnSpecificBankHolidayMondays
	NotOnGlasgowBankHolidays
)

func parseBankHolidayRunning(c byte) BankHolidayRunning {
	switch c {
	case 'X':
		return NotOnSpecificBankHolidayMondays
	case 'G':
		return NotOnGlasgowBankHolidays
	default:
		return RunsNormally
	}
}

// TrainStatus is the CIF train_status code.
type TrainStatus int

const (
	TrainStatusNotSpecified TrainStatus = iota
	TrainStatusBus
	TrainStatusFreight
	TrainStatusPassengerAndParcels
	TrainStatusShip
	TrainStatusTrip
	TrainStatusSTPPassengerAndParcels
	TrainStatusSTPFreight
	TrainStatusSTPTrip
	TrainStatusSTPShip
	TrainStatusSTPBus
)

func parseTrainStatus(c byte) (TrainStatus, error) {
	switch c {
	case ' ':
		return TrainStatusNotSpecified, nil
	case 'B':
		return TrainStatusBus, nil
	case 'F':
		return TrainStatusFreight, nil
	case 'P':
		return TrainStatusPassengerAndParcels, nil
	case 'S':
		return TrainStatusShip, nil
	case 'T':
		return TrainStatusTrip, nil
	case '1':
		return TrainStatusSTPPassengerAndParcels, nil
	case '2':
		return TrainStatusSTPFreight, nil
	case '3':
		return TrainStatusSTPTrip, nil
	case '4':
		return TrainStatusSTPShip, nil
	case '5':
		return TrainStatusSTPBus, nil
	default:
		return 0, newApplyError(errInvalidTrainStatus, string(c))
	}
}

// TrainCategory is the CIF 2-character train category code, a closed
// 55-entry table (54 codes plus the blank NotSpecified entry).
type TrainCategory int

const (
	CategoryNotSpecified TrainCategory = iota
	CategoryLondonUnderground
	CategoryUnadvertisedOrdinaryPassenger
	CategoryOrdinaryPassenger
	CategoryStaffTrain
	CategoryMixed
	CategoryChannelTunnel
	CategorySleeper
	CategoryInternational
	CategoryMotorail
	CategoryUnadvertisedExpress
	CategoryExpressPassenger
	CategorySleeperDomestic
	CategoryBusReplacementDueToEngineering
	CategoryBusWTTService
	CategoryShip
	CategoryEmptyCoachingStock
	CategoryECSLondonUnderground
	CategoryECSAndStaff
	CategoryPostal
	CategoryPostOfficeControlledParcels
	CategoryParcels
	CategoryEmptyNPCCS
	CategoryDepartmental
	CategoryCivilEngineer
	CategoryMechanicalAndElectricalEngineer
	CategoryStores
	CategoryTest
	CategorySignalAndTelecommunicationsEngineer
	CategoryLocomotiveAndBrakeVan
	CategoryLightLocomotive
	CategoryRfDAutomotiveComponents
	CategoryRfDAutomotiveVehicles
	CategoryRfDEdibleProducts
	CategoryRfDIndustrialMinerals
	CategoryRfDChemicals
	CategoryRfDBuildingMaterials
	CategoryRfDGeneralMerchandise
	CategoryRfDEuropean
	CategoryRfDFreightlinerContracts
	CategoryRfDFreightlinerOther
	CategoryCoalDistributive
	CategoryCoalElectricityMGR
	CategoryCoalOtherAndNuclear
	CategoryMetals
	CategoryAggregates
	CategoryDomesticAndIndustrialWaste
	CategoryBuildingMaterials
	CategoryPetroleumProducts
	CategoryRfDEuropeanChannelTunnelMixed
	CategoryRfDEuropeanChannelTunnelIntermodal
	CategoryRfDEuropeanChannelTunnelAutomotive
	CategoryRfDEuropeanChannelTunnelContractServices
	CategoryRfDEuropeanChannelTunnelHaulmark
	CategoryRfDEuropeanChannelTunnelJointVenture
)

var trainCategoryCodes = map[string]TrainCategory{
	"  ": CategoryNotSpecified,
	"OL": CategoryLondonUnderground,
	"OU": CategoryUnadvertisedOrdinaryPassenger,
	"OO": CategoryOrdinaryPassenger,
	"OS": CategoryStaffTrain,
	"OW": CategoryMixed,
	"XC": CategoryChannelTunnel,
	"XD": CategorySleeper,
	"XI": CategoryInternational,
	"XR": CategoryMotorail,
	"XU": CategoryUnadvertisedExpress,
	"XX": CategoryExpressPassenger,
	"XZ": CategorySleeperDomestic,
	"BR": CategoryBusReplacementDueToEngineering,
	"BS": CategoryBusWTTService,
	"SS": CategoryShip,
	"EE": CategoryEmptyCoachingStock,
	"EL": CategoryECSLondonUnderground,
	"ES": CategoryECSAndStaff,
	"JJ": CategoryPostal,
	"PM": CategoryPostOfficeControlledParcels,
	"PP": CategoryParcels,
	"PV": CategoryEmptyNPCCS,
	"DD": CategoryDepartmental,
	"DH": CategoryCivilEngineer,
	"DI": CategoryMechanicalAndElectricalEngineer,
	"DQ": CategoryStores,
	"DT": CategoryTest,
	"DY": CategorySignalAndTelecommunicationsEngineer,
	"ZB": CategoryLocomotiveAndBrakeVan,
	"ZZ": CategoryLightLocomotive,
	"J2": CategoryRfDAutomotiveComponents,
	"H2": CategoryRfDAutomotiveVehicles,
	"J3": CategoryRfDEdibleProducts,
	"J4": CategoryRfDIndustrialMinerals,
	"J5": CategoryRfDChemicals,
	"J6": CategoryRfDBuildingMaterials,
	"J8": CategoryRfDGeneralMerchandise,
	"H8": CategoryRfDEuropean,
	"J9": CategoryRfDFreightlinerContracts,
	"H9": CategoryRfDFreightlinerOther,
	"A0": CategoryCoalDistributive,
	"E0": CategoryCoalElectricityMGR,
	"B0": CategoryCoalOtherAndNuclear,
	"B1": CategoryMetals,
	"B4": CategoryAggregates,
	"B5": CategoryDomesticAndIndustrialWaste,
	"B6": CategoryBuildingMaterials,
	"B7": CategoryPetroleumProducts,
	"H0": CategoryRfDEuropeanChannelTunnelMixed,
	"H1": CategoryRfDEuropeanChannelTunnelIntermodal,
	"H3": CategoryRfDEuropeanChannelTunnelAutomotive,
	"H4": CategoryRfDEuropeanChannelTunnelContractServices,
	"H5": CategoryRfDEuropeanChannelTunnelHaulmark,
	"H6": CategoryRfDEuropeanChannelTunnelJointVenture,
}

func parseTrainCategory(s string) (TrainCategory, error) {
	cat, ok := trainCategoryCodes[s]
	if !ok {
		return 0, newApplyError(errInvalidTrainCategory, s)
	}
	return cat, nil
}

// PowerType is the CIF power_type code (trimmed before lookup).
type PowerType int

const (
	PowerNotSpecified PowerType = iota
	PowerDiesel
	PowerDieselElectricMultipleUnit
	PowerDieselMechanicalMultipleUnit
	PowerElectric
	PowerElectroDiesel
	PowerEMUPlusLocomotive
	PowerElectricMultipleUnit
	PowerHighSpeedTrain
)

func parsePowerType(s string) (PowerType, error) {
	switch strings.TrimSpace(s) {
	case "":
		return PowerNotSpecified, nil
	case "D":
		return PowerDiesel, nil
	case "DEM":
		return PowerDieselElectricMultipleUnit, nil
	case "DMU":
		return PowerDieselMechanicalMultipleUnit, nil
	case "E":
		return PowerElectric, nil
	case "ED":
		return PowerElectroDiesel, nil
	case "EML":
		return PowerEMUPlusLocomotive, nil
	case "EMU":
		return PowerElectricMultipleUnit, nil
	case "HST":
		return PowerHighSpeedTrain, nil
	default:
		return 0, newApplyError(errInvalidPowerType, s)
	}
}

// TimingLoad is context-dependent on PowerType: the same wire code means a
// different thing for a DMU, an EMU, or a loco-hauled working. It is
// resolved pull-based, after PowerType is already known, never field by
// field inside the decoder.
type TimingLoad struct {
	Kind  TimingLoadKind
	Value uint16 // populated for SpecificClass / LoadInTonnes
}

type TimingLoadKind int

const (
	TimingLoadNotSpecified TimingLoadKind = iota
	TimingLoadClass17201721Or1722
	TimingLoadClass141To144
	TimingLoadClass158168170Or175
	TimingLoadClass1650
	TimingLoadClass150153155Or156
	TimingLoadClass1651Or166
	TimingLoadClass220Or221
	TimingLoadClass159
	TimingLoadDMUPowerCarTrailer
	TimingLoadDMU2PowerCarsTrailer
	TimingLoadDMUPowerTwin
	TimingLoadAcceleratedTimings
	TimingLoadClass458
	TimingLoadClass380
	TimingLoadClass3501110MPH
	TimingLoadClass325ElectricParcelsUnit
	TimingLoadSpecificClass
	TimingLoadLoadInTonnes
)

// parseTimingLoad resolves the raw timing_load column against the
// PowerType-dependent sub-table. This must run after power has already
// been resolved from the same BS record.
func parseTimingLoad(power PowerType, raw string) (TimingLoad, error) {
	load := strings.TrimSpace(raw)
	switch power {
	case PowerDieselMechanicalMultipleUnit, PowerDieselElectricMultipleUnit:
		switch load {
		case "":
			return TimingLoad{Kind: TimingLoadNotSpecified}, nil
		case "69":
			return TimingLoad{Kind: TimingLoadClass17201721Or1722}, nil
		case "A":
			return TimingLoad{Kind: TimingLoadClass141To144}, nil
		case "E":
			return TimingLoad{Kind: TimingLoadClass158168170Or175}, nil
		case "N":
			return TimingLoad{Kind: TimingLoadClass1650}, nil
		case "S":
			return TimingLoad{Kind: TimingLoadClass150153155Or156}, nil
		case "T":
			return TimingLoad{Kind: TimingLoadClass1651Or166}, nil
		case "V":
			return TimingLoad{Kind: TimingLoadClass220Or221}, nil
		case "X":
			return TimingLoad{Kind: TimingLoadClass159}, nil
		case "D1":
			return TimingLoad{Kind: TimingLoadDMUPowerCarTrailer}, nil
		case "D2":
			return TimingLoad{Kind: TimingLoadDMU2PowerCarsTrailer}, nil
		case "D3":
			return TimingLoad{Kind: TimingLoadDMUPowerTwin}, nil
		default:
			if n, ok := parseUint16(load); ok {
				return TimingLoad{Kind: TimingLoadSpecificClass, Value: n}, nil
			}
			return TimingLoad{}, newApplyError(errInvalidTimingLoad, raw)
		}
	case PowerElectricMultipleUnit:
		switch load {
		case "":
			return TimingLoad{Kind: TimingLoadNotSpecified}, nil
		case "AT":
			return TimingLoad{Kind: TimingLoadAcceleratedTimings}, nil
		case "E":
			return TimingLoad{Kind: TimingLoadClass458}, nil
		case "0":
			return TimingLoad{Kind: TimingLoadClass380}, nil
		case "506":
			return TimingLoad{Kind: TimingLoadClass3501110MPH}, nil
		default:
			if n, ok := parseUint16(load); ok {
				return TimingLoad{Kind: TimingLoadSpecificClass, Value: n}, nil
			}
			return TimingLoad{}, newApplyError(errInvalidTimingLoad, raw)
		}
	case PowerDiesel, PowerElectric, PowerElectroDiesel:
		if load == "" {
			return TimingLoad{Kind: TimingLoadNotSpecified}, nil
		}
		if power == PowerElectric && load == "325" {
			return TimingLoad{Kind: TimingLoadClass325ElectricParcelsUnit}, nil
		}
		if n, ok := parseUint16(load); ok {
			return TimingLoad{Kind: TimingLoadLoadInTonnes, Value: n}, nil
		}
		return TimingLoad{}, newApplyError(errInvalidTimingLoad, raw)
	default:
		return TimingLoad{Kind: TimingLoadNotSpecified}, nil
	}
}

func parseUint16(s string) (uint16, bool) {
	var n uint64
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
	}
	if n > 0xffff {
		return 0, false
	}
	return uint16(n), true
}

// OperatingCharacteristic is one flag out of the 6-char operating
// characteristics column; a schedule carries a set of these.
type OperatingCharacteristic int

const (
	CharVacuumBraked OperatingCharacteristic = iota
	CharTimedAt100MPH
	CharDOOCoachingStockTrains
	CharConveysMark4Coaches
	CharGuardRequired
	CharTimedAt110MPH
	CharPushPullTrain
	CharRunsAsRequired
	CharAirConditionedWithPASystem
	CharSteamHeated
	CharRunsToTerminalsAsRequired
	CharMayConveyTrafficToSB1CGauge
)

func parseOperatingCharacteristic(c byte) (OperatingCharacteristic, bool, error) {
	switch c {
	case 'B':
		return CharVacuumBraked, true, nil
	case 'C':
		return CharTimedAt100MPH, true, nil
	case 'D':
		return CharDOOCoachingStockTrains, true, nil
	case 'E':
		return CharConveysMark4Coaches, true, nil
	case 'G':
		return CharGuardRequired, true, nil
	case 'M':
		return CharTimedAt110MPH, true, nil
	case 'P':
		return CharPushPullTrain, true, nil
	case 'Q':
		return CharRunsAsRequired, true, nil
	case 'R':
		return CharAirConditionedWithPASystem, true, nil
	case 'S':
		return CharSteamHeated, true, nil
	case 'Y':
		return CharRunsToTerminalsAsRequired, true, nil
	case 'Z':
		return CharMayConveyTrafficToSB1CGauge, true, nil
	case ' ':
		return 0, false, nil
	default:
		return 0, false, newApplyError(errInvalidOperatingChar, string(c))
	}
}

// SeatingClass is the CIF seating_class code.
type SeatingClass int

const (
	SeatingFirstAndStandard SeatingClass = iota
	SeatingStandardOnly
)

func parseSeatingClass(c byte) (SeatingClass, error) {
	switch c {
	case ' ', 'B':
		return SeatingFirstAndStandard, nil
	case 'S':
		return SeatingStandardOnly, nil
	default:
		return 0, newApplyError(errInvalidSeatingClass, string(c))
	}
}

// Sleepers is the CIF sleepers code.
type Sleepers int

const (
	SleepersFirstAndStandard Sleepers = iota
	SleepersFirstOnly
	SleepersStandardOnly
	SleepersNotSpecified
)

func parseSleepers(c byte) (Sleepers, error) {
	switch c {
	case 'B':
		return SleepersFirstAndStandard, nil
	case 'F':
		return SleepersFirstOnly, nil
	case 'S':
		return SleepersStandardOnly, nil
	case ' ':
		return SleepersNotSpecified, nil
	default:
		return 0, newApplyError(errInvalidSleepers, string(c))
	}
}

// Reservations is the CIF reservations code.
type Reservations int

const (
	ReservationsCompulsory Reservations = iota
	ReservationsCompulsoryForBicycles
	ReservationsRecommended
	ReservationsPossible
	ReservationsNotSpecified
)

func parseReservations(c byte) (Reservations, error) {
	switch c {
	case 'A':
		return ReservationsCompulsory, nil
	case 'E':
		return ReservationsCompulsoryForBicycles, nil
	case 'R':
		return ReservationsRecommended, nil
	case 'S':
		return ReservationsPossible, nil
	case ' ':
		return ReservationsNotSpecified, nil
	default:
		return 0, newApplyError(errInvalidReservations, string(c))
	}
}

// Catering is one flag out of the multi-char catering_code column; a
// schedule carries a set of these.
type Catering int

const (
	CateringBuffetService Catering = iota
	CateringRestaurantCarForFirstClass
	CateringHotFood
	CateringMealForFirstClass
	CateringWheelchairReservations
	CateringRestaurant
	CateringTrolleyService
)

func parseCatering(c byte) (Catering, bool, error) {
	switch c {
	case 'C':
		return CateringBuffetService, true, nil
	case 'F':
		return CateringRestaurantCarForFirstClass, true, nil
	case 'H':
		return CateringHotFood, true, nil
	case 'M':
		return CateringMealForFirstClass, true, nil
	case 'P':
		return CateringWheelchairReservations, true, nil
	case 'R':
		return CateringRestaurant, true, nil
	case 'T':
		return CateringTrolleyService, true, nil
	case ' ':
		return 0, false, nil
	default:
		return 0, false, newApplyError(errInvalidCateringCode, string(c))
	}
}

// STPIndicator is the CIF Short Term Planning indicator, shared by BS and
// Schedule records.
type STPIndicator int

const (
	STPNew STPIndicator = iota
	STPCancellation
	STPOverlay
	STPPermanent
)

func parseSTPIndicator(c byte) (STPIndicator, error) {
	switch c {
	case 'C':
		return STPCancellation, nil
	case 'N':
		return STPNew, nil
	case 'O':
		return STPOverlay, nil
	case 'P':
		return STPPermanent, nil
	default:
		return 0, newApplyError(errInvalidSTPIndicator, string(c))
	}
}

// UpdateIndicator is the CIF HD update_indicator code.
type UpdateIndicator int

const (
	UpdateIndicatorUpdate UpdateIndicator = iota
	UpdateIndicatorFull
)

func parseUpdateIndicator(c byte) UpdateIndicator {
	if c == 'F' {
		return UpdateIndicatorFull
	}
	return UpdateIndicatorUpdate
}
