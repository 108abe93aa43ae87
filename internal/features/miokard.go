package features

// Miokard lists the 107 inputs of the myocardial-infarction outcome model in
// training column order. Features the dashboard form does not collect are
// held at zero.
func Miokard() []Feature {
	return []Feature{
		{Name: "AGE", Source: "date_birth", Transform: AgeYears()},
		{Name: "SEX", Source: "gender", Transform: Recode(sexCodes)},
		{Name: "INF_ANAM", Source: "number_myocardial_infarctions", Transform: Identity()},
		{Name: "STENOK_AN", Source: "duration_stenocardia", Transform: Identity()},
		{Name: "FK_STENOK", Source: "functional_class_stenocardia", Transform: Identity()},
		{Name: "IBS_POST", Source: "characteristics_ashd", Transform: Identity()},
		{Name: "IBS_NASL", Source: "", Transform: Constant(0)},
		{Name: "GB", Source: "hypertension", Transform: Identity()},
		{Name: "SIM_GIPERT", Source: "symptomatic_hypertension", Transform: Identity()},
		{Name: "DLIT_AG", Source: "arterial_hypertension_duration", Transform: Identity()},
		{Name: "ZSN_A", Source: "chronic_heart_failure", Transform: Identity()},
		{Name: "nr_11", Source: "rhythm_disturbances_anamnesis", Transform: Identity()},
		{Name: "nr_01", Source: "atrial_extrasystole_anamnesis", Transform: Identity()},
		{Name: "nr_02", Source: "ventricular_extrasystole_anamnesis", Transform: Identity()},
		{Name: "nr_03", Source: "paroxysms_atrial_fibrillation_anamnesis", Transform: Identity()},
		{Name: "nr_04", Source: "permanent_form_atrial_fibrillation_anamnesis", Transform: Identity()},
		{Name: "nr_07", Source: "ventricular_fibrillation_anamnesis", Transform: Identity()},
		{Name: "nr_08", Source: "ventricular_paroxysmal_tachycardia_anamnesis", Transform: Identity()},
		{Name: "np_01", Source: "AV_block_one_degree_anamnesis", Transform: Identity()},
		{Name: "np_04", Source: "AV_block_three_degree_anamnesis", Transform: Identity()},
		{Name: "np_05", Source: "left_bundle_anterior_branch_block_anamnesis", Transform: Identity()},
		{Name: "np_07", Source: "left_bundle_branch_incomplete_block_anamnesis", Transform: Identity()},
		{Name: "np_08", Source: "left_bundle_branch_full_block_anamnesis", Transform: Identity()},
		{Name: "np_09", Source: "right_bundle_branch_incomplete_block_anamnesis", Transform: Identity()},
		{Name: "np_10", Source: "right_bundle_branch_full_block_anamnesis", Transform: Identity()},
		{Name: "endocr_01", Source: "diabetes_anamnesis", Transform: Identity()},
		{Name: "endocr_02", Source: "obesity_anamnesis", Transform: Identity()},
		{Name: "endocr_03", Source: "thyrotoxicosis_anamnesis", Transform: Identity()},
		{Name: "zab_leg_01", Source: "chronical_bronchitis_anamnesis", Transform: Identity()},
		{Name: "zab_leg_02", Source: "obstructive_chronic_bronchitis_anamnesis", Transform: Identity()},
		{Name: "zab_leg_03", Source: "bronchial_asthma_anamnesis", Transform: Identity()},
		{Name: "zab_leg_04", Source: "chronic_pneumonia_anamnesis", Transform: Identity()},
		{Name: "zab_leg_06", Source: "pulmonary_tuberculosis_anamnesis", Transform: Identity()},
		{Name: "S_AD_KBRIG", Source: "", Transform: Constant(0)},
		{Name: "D_AD_KBRIG", Source: "", Transform: Constant(0)},
		{Name: "S_AD_ORIT", Source: "systolic_pressure", Transform: Identity()},
		{Name: "D_AD_ORIT", Source: "diastolic_pressure", Transform: Identity()},
		{Name: "O_L_POST", Source: "pulmonary_edema_intensive_care_unit", Transform: Identity()},
		{Name: "K_SH_POST", Source: "cardiogenic_shock_intensive_care_unit", Transform: Identity()},
		{Name: "MP_TP_POST", Source: "paroxysms_atrial_fibrillation_intensive_care_unit", Transform: Identity()},
		{Name: "SVT_POST", Source: "paroxysm_supraventricular_tachycardia_intensive_care_unit", Transform: Identity()},
		{Name: "GT_POST", Source: "paroxysm_ventricular_tachycardia_intensive_care_unit", Transform: Identity()},
		{Name: "FIB_G_POST", Source: "ventricular_fibrillation_intensive_care_unit", Transform: Identity()},
		{Name: "ant_im", Source: "infarction_anterior_wall_left_ventricle", Transform: Identity()},
		{Name: "lat_im", Source: "infarction_lateral_wall_left_ventricle", Transform: Identity()},
		{Name: "inf_im", Source: "infarction_inferior_wall_left_ventricle", Transform: Identity()},
		{Name: "post_im", Source: "infarction_posterior_wall_left_ventricle", Transform: Identity()},
		{Name: "IM_PG_P", Source: "right_ventricular_myocardial_infarction", Transform: Identity()},
		{Name: "ritm_ecg_p_01", Source: "sinus_rhythm", Transform: Identity()},
		{Name: "ritm_ecg_p_02", Source: "atrial_fibrillation", Transform: Identity()},
		{Name: "ritm_ecg_p_04", Source: "atrial_rhythm", Transform: Identity()},
		{Name: "ritm_ecg_p_06", Source: "idioventricular_rhythm", Transform: Identity()},
		{Name: "ritm_ecg_p_07", Source: "sinus_tachycardia", Transform: Identity()},
		{Name: "ritm_ecg_p_08", Source: "sinus_bradycardia", Transform: Identity()},
		{Name: "n_r_ecg_p_01", Source: "atrial_extrasystole_ecg", Transform: Identity()},
		{Name: "n_r_ecg_p_02", Source: "frequent_atrial_extrasystoles_ecg", Transform: Identity()},
		{Name: "n_r_ecg_p_03", Source: "ventricular_extrasystole_ecg", Transform: Identity()},
		{Name: "n_r_ecg_p_04", Source: "frequent_ventricular_extrasystole_ecg", Transform: Identity()},
		{Name: "n_r_ecg_p_05", Source: "paroxysms_atrial_fibrillation_ecg", Transform: Identity()},
		{Name: "n_r_ecg_p_06", Source: "permanent_form_atrial_fibrillation_ecg", Transform: Identity()},
		{Name: "n_r_ecg_p_08", Source: "supraventricular_paroxysmal_tachycardia_ecg", Transform: Identity()},
		{Name: "n_r_ecg_p_09", Source: "ventricular_paroxysmal_tachycardia_ecg", Transform: Identity()},
		{Name: "n_r_ecg_p_10", Source: "ventricular_fibrillation_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_01", Source: "sinoatrial_blockade_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_03", Source: "AV_block_one_degree_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_04", Source: "AV_block_two_degree_one_type_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_05", Source: "AV_block_two_degree_two_type_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_06", Source: "AV_block_three_degree_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_07", Source: "left_bundle_anterior_branch_his_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_08", Source: "left_bundle_posterior_branch_block_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_09", Source: "left_bundle_branch_incomplete_block_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_10", Source: "left_bundle_branch_full_block_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_11", Source: "right_bundle_branch_incomplete_block_ecg", Transform: Identity()},
		{Name: "n_p_ecg_p_12", Source: "right_bundle_branch_full_block_ecg", Transform: Identity()},
		{Name: "fibr_ter_01", Source: "celiasum_750", Transform: Identity()},
		{Name: "fibr_ter_02", Source: "celiasum_1_mln", Transform: Identity()},
		{Name: "fibr_ter_03", Source: "streptodecasum_3", Transform: Identity()},
		{Name: "fibr_ter_05", Source: "streptasum", Transform: Identity()},
		{Name: "fibr_ter_06", Source: "celiasum_500", Transform: Identity()},
		{Name: "fibr_ter_07", Source: "celiasum_250", Transform: Identity()},
		{Name: "fibr_ter_08", Source: "streptodecasum_1_5", Transform: Identity()},
		{Name: "GIPO_K", Source: "hypokalemia", Transform: Identity()},
		{Name: "K_BLOOD", Source: "potassium_content", Transform: Identity()},
		{Name: "GIPER_NA", Source: "increasing_sodium", Transform: Identity()},
		{Name: "NA_BLOOD", Source: "sodium", Transform: Identity()},
		{Name: "ALT_BLOOD", Source: "alt", Transform: Identity()},
		{Name: "AST_BLOOD", Source: "ast", Transform: Identity()},
		{Name: "KFK_BLOOD", Source: "", Transform: Constant(0)},
		{Name: "L_BLOOD", Source: "leukocytes", Transform: Identity()},
		{Name: "ROE", Source: "erythrocytes", Transform: Identity()},
		{Name: "TIME_B_S", Source: "time_anginal_attack", Transform: Identity()},
		{Name: "R_AB_1_n", Source: "", Transform: Constant(0)},
		{Name: "R_AB_2_n", Source: "", Transform: Constant(0)},
		{Name: "R_AB_3_n", Source: "", Transform: Constant(0)},
		{Name: "NA_KB", Source: "narcotic_analgesics_cardio_team", Transform: Identity()},
		{Name: "NOT_NA_KB", Source: "nonnarcotic_analgesics_cardio_team", Transform: Identity()},
		{Name: "LID_KB", Source: "lidocaine_cardio_team", Transform: Identity()},
		{Name: "NITR_S", Source: "liquid_nitrates_intensive_care_unit", Transform: Identity()},
		{Name: "NA_R_1_n", Source: "", Transform: Constant(0)},
		{Name: "NOT_NA_1_n", Source: "", Transform: Constant(0)},
		{Name: "LID_S_n", Source: "lidocaine_intensive_care_unit", Transform: Identity()},
		{Name: "B_BLOK_S_n", Source: "beta_blockers_intensive_care_unit", Transform: Identity()},
		{Name: "ANT_CA_S_n", Source: "calcium_antagonists_intensive_care_unit", Transform: Identity()},
		{Name: "GEPAR_S_n", Source: "anticoagulants_intensive_care_unit", Transform: Identity()},
		{Name: "ASP_S_n", Source: "aspirin_intensive_care_unit", Transform: Identity()},
		{Name: "TIKL_S_n", Source: "ticklid_intensive_care_unit", Transform: Identity()},
		{Name: "TRENT_S_n", Source: "trental_intensive_care_unit", Transform: Identity()},
	}
}

var sexCodes = map[string]float64{
	"мужской": 1,
	"женский": 0,
}
